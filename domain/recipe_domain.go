package domain

import (
	"errors"
)

var (
	MessageSuccessDeleteRecipe = "Recipe deleted successfully"

	ErrRecipeMissingData = errors.New("Missing data")
	ErrRecipeNotFound    = errors.New("Recipe not found")
	ErrRecipeInUse       = errors.New("Recipe is referenced by existing orders")
)

type (
	// CreateRecipeRequest only requires the keys to be present; empty strings are accepted.
	CreateRecipeRequest struct {
		Name        *string `json:"name" validate:"required"`
		Category    *string `json:"category" validate:"required"`
		Ingredients *string `json:"ingredients" validate:"required"`
		Image       *string `json:"image"`
	}

	UpdateRecipeRequest struct {
		Name        *string `json:"name"`
		Category    *string `json:"category"`
		Ingredients *string `json:"ingredients"`
		Image       *string `json:"image"`
	}

	Recipe struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Category    string `json:"category"`
		Image       string `json:"image"`
		Ingredients string `json:"ingredients"`
	}
)

func (r UpdateRecipeRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Ingredients == nil && r.Image == nil
}
