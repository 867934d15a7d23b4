package jwt

import (
	"food-order-api/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenUser_RoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token, err := svc.GenerateTokenUser(42)
	require.NoError(t, err)

	userID, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestGenerateTokenUser_ExpiresInSevenDays(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	before := time.Now()
	token, err := svc.GenerateTokenUser(1)
	require.NoError(t, err)

	parsed, err := svc.ValidateTokenUser(token)
	require.NoError(t, err)
	claims := parsed.Claims.(*jwtUserClaim)

	exp := claims.ExpiresAt.Time
	assert.WithinDuration(t, before.Add(7*24*time.Hour), exp, 2*time.Second)
	assert.Equal(t, claims.IssuedAt.Time.Add(TokenLifetime), exp)
}

func TestGetUserIDByToken_Expired(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret").(*jwtService)

	token, err := svc.generateToken(7, time.Now().Add(-TokenLifetime-time.Minute))
	require.NoError(t, err)

	_, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetUserIDByToken_WrongSecret(t *testing.T) {
	token, err := NewJWTServiceWithSecret("one").GenerateTokenUser(3)
	require.NoError(t, err)

	_, err = NewJWTServiceWithSecret("two").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByToken_Malformed(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := svc.GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid, token)
	}
}

func TestGetUserIDByToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwtUserClaim{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTServiceWithSecret("test-secret").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
