package domain

import (
	"errors"
)

const MinPasswordLength = 6

var (
	MessageSuccessRegister = "New user created successfully"

	ErrCredentialsRequired = errors.New("Username and password are required")
	ErrUsernameExists      = errors.New("Username already exists")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrUsernameEmpty       = errors.New("Username cannot be empty")
	ErrWeakPassword        = errors.New("Password must be at least 6 characters long")
	ErrUpdateUserFailed    = errors.New("Failed to update user information")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// UpdateUserRequest is a partial update: nil fields were absent from the body.
	UpdateUserRequest struct {
		Username  *string `json:"username"`
		Password  *string `json:"password"`
		AvatarURL *string `json:"avatar_url"`
	}

	User struct {
		ID        uint    `json:"id"`
		Username  string  `json:"username"`
		AvatarURL *string `json:"avatar_url"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
)

func (r UpdateUserRequest) IsEmpty() bool {
	return r.Username == nil && r.Password == nil && r.AvatarURL == nil
}
