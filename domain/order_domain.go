package domain

import (
	"errors"
	"fmt"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"

	// RecipeNameUnavailable is shown for order items whose recipe no longer resolves.
	RecipeNameUnavailable = "N/A"
)

var (
	ErrInvalidOrderPayload = errors.New("Invalid data. Expected a list of recipe_ids.")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrOrderRecipeNotFound = errors.New("order references an unknown recipe")
)

// MissingRecipeError reports the first recipe id of an order request that did not resolve.
type MissingRecipeError struct {
	RecipeID uint
}

func (e *MissingRecipeError) Error() string {
	return fmt.Sprintf("Recipe with id %d not found.", e.RecipeID)
}

func (e *MissingRecipeError) Unwrap() error {
	return ErrOrderRecipeNotFound
}

type (
	OrderItem struct {
		ID         uint   `json:"id"`
		RecipeID   uint   `json:"recipe_id"`
		RecipeName string `json:"recipe_name"`
	}

	Order struct {
		ID             uint        `json:"id"`
		Status         string      `json:"status"`
		Items          []OrderItem `json:"items"`
		UserID         uint        `json:"user_id"`
		Username       string      `json:"username"`
		CreatedAt      string      `json:"created_at"`
		UpdatedAt      string      `json:"updated_at"`
		AllIngredients []string    `json:"all_ingredients"`
	}
)

type CreateOrderRequest struct {
	RecipeIDs []uint `json:"recipe_ids"`
}
