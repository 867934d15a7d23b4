package handlers

import (
	"food-order-api/domain"
	"food-order-api/internal/api/presenters"
	"food-order-api/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidBody)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrRecipeMissingData)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := idParam(c, domain.ErrRecipeNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := idParam(c, domain.ErrRecipeNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	// An unreadable body is treated like an empty patch, so an unknown id
	// still reports 404 before the body is rejected.
	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		*req = domain.UpdateRecipeRequest{}
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := idParam(c, domain.ErrRecipeNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}
