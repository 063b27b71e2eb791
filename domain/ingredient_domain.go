package domain

import (
	"errors"
)

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	CreateIngredientRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateIngredientRequest struct {
		Name string `json:"name" validate:"required"`
	}

	IngredientResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
