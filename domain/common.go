package domain

import (
	"errors"
	"time"
)

var (
	MessageWelcome              = "Welcome to the Food Order API!"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageNoDataProvided       = "No data provided"

	ErrNoDataProvided = errors.New(MessageNoDataProvided)
	ErrInternal       = errors.New(MessageFailedProcessRequest)
	ErrInvalidBody    = errors.New(MessageFailedBodyRequest)

	// Authorization middleware
	ErrTokenMissing   = errors.New("Token is missing!")
	ErrTokenType      = errors.New("Invalid token type")
	ErrTokenFormat    = errors.New("Invalid authorization header format")
	ErrTokenExpired   = errors.New("Token has expired!")
	ErrTokenInvalid   = errors.New("Token is invalid!")
	ErrUserNotAllowed = errors.New("User not found!")
)

// DisplayZone is the fixed UTC+8 offset all order timestamps are rendered in.
var DisplayZone = time.FixedZone("UTC+8", 8*60*60)

// TimestampLayout matches ISO-8601 with microseconds and a numeric offset.
const TimestampLayout = "2006-01-02T15:04:05.999999-07:00"

func FormatTimestamp(t time.Time) string {
	return t.In(DisplayZone).Format(TimestampLayout)
}
