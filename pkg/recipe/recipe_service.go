package recipe

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/utils/storage"
	"recipe-api/pkg/ingredient"
	"recipe-api/pkg/tag"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string, filter domain.RecipeFilter) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id uint, userID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id uint, userID string) error
		UploadRecipeImage(ctx context.Context, id uint, req domain.UploadRecipeImageRequest, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
}

func toRecipeDetailResponse(r *entities.Recipe) domain.RecipeDetailResponse {
	tags := make([]domain.TagResponse, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, domain.TagResponse{ID: t.ID, Name: t.Name})
	}

	ingredients := make([]domain.IngredientResponse, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{ID: i.ID, Name: i.Name})
	}

	return domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(r),
		Description:    r.Description,
		Tags:           tags,
		Ingredients:    ingredients,
	}
}

// resolveTags loads the requested tag ids through the owner-scoped lookup.
// Ids owned by someone else come back missing, which fails the request the
// same way a nonexistent id does.
func (s *recipeService) resolveTags(ctx context.Context, ids []uint, userID string) ([]*entities.Tag, error) {
	if len(ids) == 0 {
		return []*entities.Tag{}, nil
	}
	tags, err := s.tagRepository.GetTagsByIDs(ctx, ids, userID)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, domain.ErrTagNotFound
	}
	return tags, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, ids []uint, userID string) ([]*entities.Ingredient, error) {
	if len(ids) == 0 {
		return []*entities.Ingredient{}, nil
	}
	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids, userID)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, domain.ErrIngredientNotFound
	}
	return ingredients, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, filter domain.RecipeFilter) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toRecipeResponse(r))
	}
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	tags, err := s.resolveTags(ctx, req.TagIDs, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredients, err := s.resolveIngredients(ctx, req.IngredientIDs, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if len(tags) > 0 {
		if err := s.recipeRepository.ReplaceTags(ctx, recipe, tags); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}
	if len(ingredients) > 0 {
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	recipe.Tags = tags
	recipe.Ingredients = ingredients
	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.TimeMinutes > 0 {
		recipe.TimeMinutes = req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	// nil means untouched, an empty list clears the association
	if req.TagIDs != nil {
		tags, err := s.resolveTags(ctx, req.TagIDs, userID)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if err := s.recipeRepository.ReplaceTags(ctx, recipe, tags); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Tags = tags
	}
	if req.IngredientIDs != nil {
		ingredients, err := s.resolveIngredients(ctx, req.IngredientIDs, userID)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Ingredients = ingredients
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipe)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id uint, req domain.UploadRecipeImageRequest, userID string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	ext := filepath.Ext(req.Image.Filename)
	key := fmt.Sprintf("uploads/recipe/%s%s", uuid.New().String(), ext)

	url, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return "", domain.ErrUploadFailed
	}

	recipe.ImageURL = url
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}

	return url, nil
}
