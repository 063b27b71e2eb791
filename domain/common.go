package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token is invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenRevoked   = errors.New("token revoked")
	ErrInvalidIDList  = errors.New("id list must contain comma-separated integers")
	ErrUserNotAllowed = errors.New("user not allowed")
)
