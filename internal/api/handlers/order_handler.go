package handlers

import (
	"food-order-api/domain"
	"food-order-api/internal/api/presenters"
	"food-order-api/internal/middleware"
	"food-order-api/pkg/order"

	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		CompleteOrder(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
	}
)

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidOrderPayload)
	}

	res, err := h.orderService.CreateOrder(c.Context(), middleware.CurrentUser(c), *req)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	res, err := h.orderService.GetOrders(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *orderHandler) CompleteOrder(c *fiber.Ctx) error {
	id, err := idParam(c, domain.ErrOrderNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	res, err := h.orderService.CompleteOrder(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
