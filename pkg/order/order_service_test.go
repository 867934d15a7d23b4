package order

import (
	"context"
	"errors"
	"food-order-api/domain"
	"food-order-api/entities"
	"food-order-api/internal/testutil"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent chan sentMail
	err  error
}

func (m *fakeMailer) SendMail(to, subject, body string) error {
	m.sent <- sentMail{to: to, subject: subject, body: body}
	return m.err
}

type fixture struct {
	db    *gorm.DB
	svc   OrderService
	user  *entities.User
	salty *entities.Recipe
	plain *entities.Recipe
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)

	user := &entities.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	salty := &entities.Recipe{Name: "Salty", Category: "main", Ingredients: "salt, pepper, salt"}
	require.NoError(t, db.Create(salty).Error)
	plain := &entities.Recipe{Name: "Plain", Category: "side", Ingredients: "rice pepper"}
	require.NoError(t, db.Create(plain).Error)

	return &fixture{
		db:    db,
		svc:   NewOrderService(NewOrderRepository(db), nil, ""),
		user:  user,
		salty: salty,
		plain: plain,
	}
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.salty.ID, f.plain.ID}})
	require.NoError(t, err)

	assert.NotZero(t, res.ID)
	assert.Equal(t, domain.OrderStatusPending, res.Status)
	assert.Equal(t, f.user.ID, res.UserID)
	assert.Equal(t, "alice", res.Username)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Salty", res.Items[0].RecipeName)
	assert.Equal(t, "Plain", res.Items[1].RecipeName)
	assert.ElementsMatch(t, []string{"salt", "pepper", "rice"}, res.AllIngredients)
	assert.True(t, strings.HasSuffix(res.CreatedAt, "+08:00"), res.CreatedAt)
}

func TestCreateOrder_DuplicateRecipes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.salty.ID, f.salty.ID}})
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.NotEqual(t, res.Items[0].ID, res.Items[1].ID)
	for _, item := range res.Items {
		assert.Equal(t, f.salty.ID, item.RecipeID)
	}
	assert.Equal(t, int64(2), f.count(t, &entities.OrderItem{}))
	assert.ElementsMatch(t, []string{"salt", "pepper"}, res.AllIngredients)
}

func TestCreateOrder_UnknownRecipeRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.salty.ID, 999}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOrderRecipeNotFound)

	var missing *domain.MissingRecipeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, uint(999), missing.RecipeID)
	assert.Equal(t, "Recipe with id 999 not found.", err.Error())

	assert.Zero(t, f.count(t, &entities.Order{}))
	assert.Zero(t, f.count(t, &entities.OrderItem{}))
}

func TestCreateOrder_EmptyPayload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidOrderPayload)
	assert.Zero(t, f.count(t, &entities.Order{}))
}

func TestGetOrders_NewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.salty.ID}})
	require.NoError(t, err)
	second, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.plain.ID, f.salty.ID}})
	require.NoError(t, err)

	orders, err := f.svc.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, "Plain", orders[0].Items[0].RecipeName)
	assert.Equal(t, "Salty", orders[0].Items[1].RecipeName)
}

func TestCompleteOrder_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.salty.ID}})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		done, err := f.svc.CompleteOrder(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, done.Status)
		require.Len(t, done.Items, 1)
		assert.Equal(t, "Salty", done.Items[0].RecipeName)
	}

	_, err = f.svc.CompleteOrder(ctx, 12345)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetOrderByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := NewOrderRepository(f.db)

	created, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.plain.ID, f.salty.ID}})
	require.NoError(t, err)

	order, err := repo.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	require.NotNil(t, order.Items[0].Recipe)
	assert.Equal(t, "Plain", order.Items[0].Recipe.Name)
	assert.Equal(t, "Salty", order.Items[1].Recipe.Name)

	_, err = repo.GetOrderByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteOrder_CascadesItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	keep, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.plain.ID}})
	require.NoError(t, err)
	drop, err := f.svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.salty.ID, f.plain.ID}})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteOrder(ctx, drop.ID))
	assert.Equal(t, int64(1), f.count(t, &entities.Order{}))
	assert.Equal(t, int64(1), f.count(t, &entities.OrderItem{}))

	orders, err := f.svc.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, keep.ID, orders[0].ID)

	assert.ErrorIs(t, f.svc.DeleteOrder(ctx, drop.ID), domain.ErrOrderNotFound)
}

func TestToOrderResponse_MissingRecipe(t *testing.T) {
	created := time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC)
	order := &entities.Order{
		ID:       9,
		Status:   domain.OrderStatusPending,
		UserID:   1,
		Username: "ghost",
		Items:    []entities.OrderItem{{ID: 1, RecipeID: 77}},
		Timestamp: entities.Timestamp{
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	res := ToOrderResponse(order)
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.RecipeNameUnavailable, res.Items[0].RecipeName)
	assert.Equal(t, "2024-05-01T12:00:00+08:00", res.CreatedAt)
	assert.NotNil(t, res.AllIngredients)
	assert.Empty(t, res.AllIngredients)
}

func TestCreateOrder_NotifiesKitchen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	mailer := &fakeMailer{sent: make(chan sentMail, 1), err: errors.New("smtp down")}
	svc := NewOrderService(NewOrderRepository(f.db), mailer, "kitchen@example.com")

	res, err := svc.CreateOrder(ctx, f.user, domain.CreateOrderRequest{RecipeIDs: []uint{f.salty.ID}})
	require.NoError(t, err, "mail failures never fail the order")

	select {
	case mail := <-mailer.sent:
		assert.Equal(t, "kitchen@example.com", mail.to)
		assert.Contains(t, mail.subject, "alice")
		assert.Contains(t, mail.body, "Salty")
		assert.Contains(t, mail.body, "pepper")
	case <-time.After(2 * time.Second):
		t.Fatalf("no kitchen mail sent for order %d", res.ID)
	}
}
