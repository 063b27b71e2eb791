package handlers

import (
	"errors"
	"strconv"

	"recipe-api/domain"
	"recipe-api/internal/api/presenters"
	"recipe-api/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func ingredientStatus(err error) int {
	if errors.Is(err, domain.ErrIngredientNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	assignedOnly, err := strconv.ParseBool(c.Query("assigned_only", "0"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	res, err := h.ingredientService.GetIngredients(c.Context(), userID, assignedOnly)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIngredient, err)
	}

	res, err := h.ingredientService.CreateIngredient(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIngredient)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, domain.ErrInvalidIDList)
	}

	req := new(domain.UpdateIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), uint(id), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, ingredientStatus(err), domain.MessageFailedUpdateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, domain.ErrInvalidIDList)
	}

	if err := h.ingredientService.DeleteIngredient(c.Context(), uint(id), userID); err != nil {
		return presenters.ErrorResponse(c, ingredientStatus(err), domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}
