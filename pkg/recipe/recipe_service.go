package recipe

import (
	"context"
	"errors"
	"food-order-api/domain"
	"food-order-api/entities"
	"food-order-api/internal/utils/storage"
	"regexp"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

var uploadedImagePattern = regexp.MustCompile(`/uploads/(.+)$`)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		GetRecipes(ctx context.Context) ([]domain.Recipe, error)
		GetRecipe(ctx context.Context, id uint) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		storage          storage.FileStorage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, fileStorage storage.FileStorage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		storage:          fileStorage,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	if req.Name == nil || req.Category == nil || req.Ingredients == nil {
		return domain.Recipe{}, domain.ErrRecipeMissingData
	}

	recipe := &entities.Recipe{
		Name:        *req.Name,
		Category:    *req.Category,
		Ingredients: *req.Ingredients,
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}
	return ToRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, ToRecipeResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return ToRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}

	if req.IsEmpty() {
		return domain.Recipe{}, domain.ErrNoDataProvided
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}
	return ToRecipeResponse(recipe), nil
}

// DeleteRecipe removes the row and then makes a best-effort attempt to remove
// the uploaded image it points at.
func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	s.deleteImage(ctx, recipe.Image)
	return nil
}

func (s *recipeService) deleteImage(ctx context.Context, imageURL string) {
	if imageURL == "" || s.storage == nil {
		return
	}

	match := uploadedImagePattern.FindStringSubmatch(imageURL)
	if match == nil {
		return
	}

	if err := s.storage.Delete(ctx, match[1]); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
		log.Warnf("Error deleting image file %s: %v", match[1], err)
	}
}

func (s *recipeService) getRecipe(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func ToRecipeResponse(recipe *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Category:    recipe.Category,
		Image:       recipe.Image,
		Ingredients: recipe.Ingredients,
	}
}
