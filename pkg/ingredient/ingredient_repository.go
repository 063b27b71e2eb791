package ingredient

import (
	"context"

	"recipe-api/entities"
	"recipe-api/internal/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// IngredientRepository only exposes owner-scoped queries; there is no
	// lookup that skips the ownership predicate.
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredients(ctx context.Context, userID string, assignedOnly bool) ([]*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint, userID string) (*entities.Ingredient, error)
		GetIngredientsByIDs(ctx context.Context, ids []uint, userID string) ([]*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, ingredient *entities.Ingredient) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, userID string, assignedOnly bool) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient

	query := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Scopes(scope.OwnedBy("ingredients", userID))

	if assignedOnly {
		query = query.Scopes(scope.AssignedTo("recipe_ingredients", "ingredient_id", "ingredients"))
	}

	// The assigned_only join duplicates ingredients used by several recipes.
	if err := query.
		Distinct("ingredients.*").
		Order("ingredients.name DESC").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}

	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uint, userID string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Scopes(scope.OwnedBy("ingredients", userID)).
		Where("ingredients.id = ?", id).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredientsByIDs(ctx context.Context, ids []uint, userID string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Scopes(scope.OwnedBy("ingredients", userID)).
		Where("ingredients.id IN ?", ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(ingredient).Error
}
