package handlers

import (
	"errors"
	"strconv"

	"recipe-api/domain"
	"recipe-api/internal/api/presenters"
	"recipe-api/pkg/tag"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TagHandler interface {
		GetTags(c *fiber.Ctx) error
		CreateTag(c *fiber.Ctx) error
		UpdateTag(c *fiber.Ctx) error
		DeleteTag(c *fiber.Ctx) error
	}

	tagHandler struct {
		tagService tag.TagService
		validator  *validator.Validate
	}
)

func NewTagHandler(tagService tag.TagService, validator *validator.Validate) TagHandler {
	return &tagHandler{
		tagService: tagService,
		validator:  validator,
	}
}

func tagStatus(err error) int {
	if errors.Is(err, domain.ErrTagNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *tagHandler) GetTags(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	assignedOnly, err := strconv.ParseBool(c.Query("assigned_only", "0"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTags, err)
	}

	res, err := h.tagService.GetTags(c.Context(), userID, assignedOnly)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTags, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTags)
}

func (h *tagHandler) CreateTag(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateTagRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTag, err)
	}

	res, err := h.tagService.CreateTag(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTag)
}

func (h *tagHandler) UpdateTag(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTag, domain.ErrInvalidIDList)
	}

	req := new(domain.UpdateTagRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTag, err)
	}

	res, err := h.tagService.UpdateTag(c.Context(), uint(id), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, tagStatus(err), domain.MessageFailedUpdateTag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTag)
}

func (h *tagHandler) DeleteTag(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTag, domain.ErrInvalidIDList)
	}

	if err := h.tagService.DeleteTag(c.Context(), uint(id), userID); err != nil {
		return presenters.ErrorResponse(c, tagStatus(err), domain.MessageFailedDeleteTag, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTag)
}
