package handlers

import (
	"food-order-api/domain"
	"food-order-api/internal/api/presenters"
	"food-order-api/internal/middleware"
	"food-order-api/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrCredentialsRequired)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrCredentialsRequired)
	}

	if err := h.userService.Register(c.Context(), *req); err != nil {
		return errorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrCredentialsRequired)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrCredentialsRequired)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.userService.Me(middleware.CurrentUser(c)), fiber.StatusOK)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	req := new(domain.UpdateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrNoDataProvided)
	}

	res, err := h.userService.UpdateUser(c.Context(), middleware.CurrentUser(c), *req)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
