package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrUploadFailed   = errors.New("image upload failed")
)

type (
	// RecipeFilter narrows the owner-scoped recipe list to rows linked to
	// at least one of the given tag/ingredient ids.
	RecipeFilter struct {
		TagIDs        []uint
		IngredientIDs []uint
	}

	CreateRecipeRequest struct {
		Title         string  `json:"title" validate:"required"`
		Description   string  `json:"description" validate:"omitempty"`
		TimeMinutes   int     `json:"time_minutes" validate:"required,min=1"`
		Price         float64 `json:"price" validate:"required,min=0"`
		Link          string  `json:"link" validate:"omitempty"`
		TagIDs        []uint  `json:"tag_ids" validate:"omitempty"`
		IngredientIDs []uint  `json:"ingredient_ids" validate:"omitempty"`
	}

	UpdateRecipeRequest struct {
		Title         string   `json:"title" validate:"omitempty"`
		Description   *string  `json:"description" validate:"omitempty"`
		TimeMinutes   int      `json:"time_minutes" validate:"omitempty,min=1"`
		Price         *float64 `json:"price" validate:"omitempty,min=0"`
		Link          *string  `json:"link" validate:"omitempty"`
		TagIDs        []uint   `json:"tag_ids" validate:"omitempty"`
		IngredientIDs []uint   `json:"ingredient_ids" validate:"omitempty"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID          uint      `json:"id"`
		Title       string    `json:"title"`
		TimeMinutes int       `json:"time_minutes"`
		Price       float64   `json:"price"`
		Link        string    `json:"link"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Description string               `json:"description"`
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
	}
)
