package order

import (
	"context"
	"errors"
	"fmt"
	"food-order-api/domain"
	"food-order-api/entities"
	"food-order-api/internal/utils/mailing"
	"html"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, user *entities.User, req domain.CreateOrderRequest) (domain.Order, error)
		GetOrders(ctx context.Context) ([]domain.Order, error)
		CompleteOrder(ctx context.Context, id uint) (domain.Order, error)
		DeleteOrder(ctx context.Context, id uint) error
	}

	orderService struct {
		orderRepository OrderRepository
		mailer          mailing.Mailer
		kitchenEmail    string
	}
)

// NewOrderService builds the order service. When mailer is nil or kitchenEmail
// is empty no kitchen notifications are sent.
func NewOrderService(orderRepository OrderRepository, mailer mailing.Mailer, kitchenEmail string) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		mailer:          mailer,
		kitchenEmail:    kitchenEmail,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, user *entities.User, req domain.CreateOrderRequest) (domain.Order, error) {
	if len(req.RecipeIDs) == 0 {
		return domain.Order{}, domain.ErrInvalidOrderPayload
	}

	order := &entities.Order{
		Status:   domain.OrderStatusPending,
		UserID:   user.ID,
		Username: user.Username,
	}
	if err := s.orderRepository.CreateOrder(ctx, order, req.RecipeIDs); err != nil {
		return domain.Order{}, err
	}

	res := ToOrderResponse(order)
	if s.mailer != nil && s.kitchenEmail != "" {
		go s.notifyKitchen(res)
	}
	return res, nil
}

func (s *orderService) GetOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		response = append(response, ToOrderResponse(order))
	}
	return response, nil
}

func (s *orderService) CompleteOrder(ctx context.Context, id uint) (domain.Order, error) {
	order, err := s.orderRepository.CompleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return ToOrderResponse(order), nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.orderRepository.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (s *orderService) notifyKitchen(order domain.Order) {
	subject := fmt.Sprintf("New order #%d from %s", order.ID, order.Username)
	if err := s.mailer.SendMail(s.kitchenEmail, subject, kitchenMailBody(order)); err != nil {
		log.Warnf("kitchen notification for order %d failed: %v", order.ID, err)
	}
}

func kitchenMailBody(order domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h3>Order #%d</h3><p>Placed by %s at %s</p><ul>",
		order.ID, html.EscapeString(order.Username), order.CreatedAt)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(item.RecipeName))
	}
	b.WriteString("</ul><p>Ingredients: ")
	escaped := make([]string, len(order.AllIngredients))
	for i, ingredient := range order.AllIngredients {
		escaped[i] = html.EscapeString(ingredient)
	}
	b.WriteString(strings.Join(escaped, ", "))
	b.WriteString("</p>")
	return b.String()
}

func ToOrderResponse(order *entities.Order) domain.Order {
	items := make([]domain.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		name := domain.RecipeNameUnavailable
		if item.Recipe != nil {
			name = item.Recipe.Name
		}
		items = append(items, domain.OrderItem{
			ID:         item.ID,
			RecipeID:   item.RecipeID,
			RecipeName: name,
		})
	}

	return domain.Order{
		ID:             order.ID,
		Status:         order.Status,
		Items:          items,
		UserID:         order.UserID,
		Username:       order.Username,
		CreatedAt:      domain.FormatTimestamp(order.CreatedAt),
		UpdatedAt:      domain.FormatTimestamp(order.UpdatedAt),
		AllIngredients: AggregateIngredients(order.Items),
	}
}
