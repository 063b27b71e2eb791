package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessLogout         = "successfully logged out"
	MessageSuccessGetMe          = "success get profile"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedLogout         = "failed to logout"
	MessageFailedGetMe          = "failed to get profile"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 5 characters")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	UserRegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=5"`
		Name     string `json:"name" validate:"required"`
	}

	UserRegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	UserLoginRequest struct {
		Username string `json:"username" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Refresh  string `json:"refresh"`
		Access   string `json:"access"`
		UserID   string `json:"user_id"`
		Username string `json:"username"`
	}

	UserLogoutRequest struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	UserMeResponse struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	UserUpdateRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Password string `json:"password" validate:"omitempty,min=5"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=5"`
	}
)
