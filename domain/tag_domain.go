package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessCreateTag = "tag created successfully"
	MessageSuccessUpdateTag = "tag updated successfully"
	MessageSuccessDeleteTag = "tag deleted successfully"

	MessageFailedGetTags   = "failed to get tags"
	MessageFailedCreateTag = "failed to create tag"
	MessageFailedUpdateTag = "failed to update tag"
	MessageFailedDeleteTag = "failed to delete tag"

	ErrTagNotFound = errors.New("tag not found")
)

type (
	CreateTagRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateTagRequest struct {
		Name string `json:"name" validate:"required"`
	}

	TagResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
