package user

import (
	"context"
	"errors"
	"food-order-api/domain"
	"food-order-api/entities"
	"food-order-api/pkg/jwt"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(user *entities.User) domain.User
		UpdateUser(ctx context.Context, current *entities.User, req domain.UpdateUserRequest) (domain.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	if req.Username == "" || req.Password == "" {
		return domain.ErrCredentialsRequired
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	return s.userRepository.CreateUser(ctx, &entities.User{
		Username:     req.Username,
		PasswordHash: hash,
	})
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return domain.LoginResponse{}, domain.ErrCredentialsRequired
	}

	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !CheckPassword(user.PasswordHash, req.Password) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

func (s *userService) Me(user *entities.User) domain.User {
	return ToUserResponse(user)
}

// UpdateUser applies req to a copy of current and persists it as a unit, so
// current is untouched when any field is rejected or the save fails.
func (s *userService) UpdateUser(ctx context.Context, current *entities.User, req domain.UpdateUserRequest) (domain.User, error) {
	if req.IsEmpty() {
		return domain.User{}, domain.ErrNoDataProvided
	}

	updated := *current

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return domain.User{}, domain.ErrUsernameEmpty
		}
		updated.Username = username
	}

	if req.Password != nil {
		if utf8.RuneCountInString(*req.Password) < domain.MinPasswordLength {
			return domain.User{}, domain.ErrWeakPassword
		}
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return domain.User{}, err
		}
		updated.PasswordHash = hash
	}

	if req.AvatarURL != nil {
		avatar := *req.AvatarURL
		updated.AvatarURL = &avatar
	}

	if err := s.userRepository.UpdateUser(ctx, &updated); err != nil {
		if errors.Is(err, domain.ErrUsernameExists) {
			return domain.User{}, err
		}
		log.Errorf("update user %d: %v", current.ID, err)
		return domain.User{}, domain.ErrUpdateUserFailed
	}

	*current = updated
	return ToUserResponse(current), nil
}

func ToUserResponse(user *entities.User) domain.User {
	return domain.User{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}
