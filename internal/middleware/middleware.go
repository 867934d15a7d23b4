package middleware

import (
	"errors"
	"food-order-api/domain"
	"food-order-api/entities"
	"food-order-api/internal/api/presenters"
	"food-order-api/pkg/jwt"
	"food-order-api/pkg/user"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		userRepository user.UserRepository
	}
)

func NewMiddleware(userRepository user.UserRepository) Middleware {
	return &middleware{userRepository: userRepository}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New()
}

// AuthMiddleware rejects the request with 401 unless it carries a valid
// "Bearer <token>" header for an existing user. The user is made available to
// later handlers through CurrentUser.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, err)
		}

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, err)
		}

		current, err := m.userRepository.GetUserByID(c.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrUserNotAllowed)
			}
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.ErrInternal)
		}

		c.Locals(currentUserKey, current)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware, or nil on routes
// it does not guard.
func CurrentUser(c *fiber.Ctx) *entities.User {
	current, _ := c.Locals(currentUserKey).(*entities.User)
	return current
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", domain.ErrTokenMissing
	}

	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", domain.ErrTokenFormat
	}
	if !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrTokenType
	}
	return parts[1], nil
}
