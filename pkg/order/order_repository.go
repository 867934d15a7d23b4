package order

import (
	"context"
	"errors"
	"food-order-api/domain"
	"food-order-api/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order, recipeIDs []uint) error
		GetOrders(ctx context.Context) ([]*entities.Order, error)
		GetOrderByID(ctx context.Context, id uint) (*entities.Order, error)
		CompleteOrder(ctx context.Context, id uint) (*entities.Order, error)
		DeleteOrder(ctx context.Context, id uint) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id asc")
		}).
		Preload("Items.Recipe")
}

// CreateOrder resolves every recipe id and writes the order plus one item per
// id inside a single transaction. The first id that does not resolve aborts the
// transaction with a *domain.MissingRecipeError.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order, recipeIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipes := make([]*entities.Recipe, 0, len(recipeIDs))
		for _, id := range recipeIDs {
			var recipe entities.Recipe
			if err := tx.Where("id = ?", id).First(&recipe).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &domain.MissingRecipeError{RecipeID: id}
				}
				return err
			}
			recipes = append(recipes, &recipe)
		}

		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		items := make([]entities.OrderItem, len(recipes))
		for i, recipe := range recipes {
			items[i] = entities.OrderItem{OrderID: order.ID, RecipeID: recipe.ID}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		for i := range items {
			items[i].Recipe = recipes[i]
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepository) GetOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := withItems(r.db.WithContext(ctx)).Order("id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	var order entities.Order
	if err := withItems(r.db.WithContext(ctx)).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// CompleteOrder marks the order completed. Completing an already completed
// order re-applies the same state.
func (r *orderRepository) CompleteOrder(ctx context.Context, id uint) (*entities.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entities.Order
		if err := tx.Where("id = ?", id).First(&order).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("status", domain.OrderStatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetOrderByID(ctx, id)
}

// DeleteOrder removes the order together with all of its items.
func (r *orderRepository) DeleteOrder(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
