package recipe

import (
	"context"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// RecipeRepository only exposes owner-scoped queries; there is no
	// lookup that skips the ownership predicate.
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipes(ctx context.Context, userID string, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint, userID string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		ReplaceTags(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag) error
		ReplaceIngredients(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.Ingredient) error
		DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

// GetRecipes narrows the owner's recipes to those linked to at least one of
// the requested tag/ingredient ids (union within each list). The link-table
// joins duplicate rows, so the select is DISTINCT.
func (r *recipeRepository) GetRecipes(ctx context.Context, userID string, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Scopes(scope.OwnedBy("recipes", userID))

	if len(filter.TagIDs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", filter.TagIDs)
	}

	if len(filter.IngredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", filter.IngredientIDs)
	}

	if err := query.
		Distinct("recipes.*").
		Order("recipes.id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint, userID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(scope.OwnedBy("recipes", userID)).
		Where("recipes.id = ?", id).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recipe).Error
}

func (r *recipeRepository) ReplaceTags(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag) error {
	return r.db.WithContext(ctx).Model(recipe).Association("Tags").Replace(tags)
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.Ingredient) error {
	return r.db.WithContext(ctx).Model(recipe).Association("Ingredients").Replace(ingredients)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(recipe).Error
}
