package handlers

import (
	"errors"
	"strconv"

	"recipe-api/domain"
	"recipe-api/internal/api/presenters"
	"recipe-api/internal/utils"
	"recipe-api/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
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

func recipeStatus(err error) int {
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	tagIDs, err := utils.ParamsToIDs(c.Query("tags"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrInvalidIDList)
	}

	ingredientIDs, err := utils.ParamsToIDs(c.Query("ingredients"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrInvalidIDList)
	}

	filter := domain.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	}

	res, err := h.recipeService.GetRecipes(c.Context(), userID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrInvalidIDList)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), uint(id), userID)
	if err != nil {
		return presenters.ErrorResponse(c, recipeStatus(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, domain.ErrInvalidIDList)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), uint(id), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, recipeStatus(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, domain.ErrInvalidIDList)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), uint(id), userID); err != nil {
		return presenters.ErrorResponse(c, recipeStatus(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrInvalidIDList)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadRecipeImageRequest{Image: file}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	url, err := h.recipeService.UploadRecipeImage(c.Context(), uint(id), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, recipeStatus(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
