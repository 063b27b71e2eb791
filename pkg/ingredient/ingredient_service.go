package ingredient

import (
	"context"
	"errors"

	"recipe-api/domain"
	"recipe-api/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, userID string, assignedOnly bool) ([]domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id uint, userID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context, userID string, assignedOnly bool) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, domain.IngredientResponse{ID: i.ID, Name: i.Name})
	}
	return res, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	ingredient := &entities.Ingredient{
		UserID: userUUID,
		Name:   req.Name,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	ingredient.Name = req.Name
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint, userID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	return s.ingredientRepository.DeleteIngredient(ctx, ingredient)
}
