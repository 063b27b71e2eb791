package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/utils/mailing"
	"recipe-api/pkg/auth"
	"recipe-api/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		RegisterUser(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
		Logout(ctx context.Context, req domain.UserLogoutRequest) error
		Me(ctx context.Context, userID string) (domain.UserMeResponse, error)
		UpdateUser(ctx context.Context, req domain.UserUpdateRequest, userID string) (domain.UserMeResponse, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository    UserRepository
		sessionRepository auth.SessionRepository
		jwtService        jwt.JWTService
	}
)

func NewUserService(
	userRepository UserRepository,
	sessionRepository auth.SessionRepository,
	jwtService jwt.JWTService,
) UserService {
	return &userService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
	}
}

func (s *userService) RegisterUser(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	if len(req.Password) < 5 {
		return domain.UserRegisterResponse{}, domain.ErrPasswordTooShort
	}

	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.UserRegisterResponse{}, err
	}
	if exists {
		return domain.UserRegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserRegisterResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		IsActive: true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserRegisterResponse{}, err
	}

	return domain.UserRegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.UserLoginResponse{}, err
	}

	if !user.IsActive {
		return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
	}

	session := &entities.AuthSession{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(jwt.RefreshTokenDuration),
	}
	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return domain.UserLoginResponse{}, err
	}

	access, refresh, err := s.jwtService.GenerateTokenPair(user.ID.String(), session.ID.String())
	if err != nil {
		return domain.UserLoginResponse{}, err
	}

	return domain.UserLoginResponse{
		Refresh:  refresh,
		Access:   access,
		UserID:   user.ID.String(),
		Username: user.Name,
	}, nil
}

// Logout revokes the session carried by the refresh token, which kills the
// paired access token on the next middleware check.
func (s *userService) Logout(ctx context.Context, req domain.UserLogoutRequest) error {
	claims, err := s.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return err
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return domain.ErrTokenInvalid
	}

	session, err := s.sessionRepository.GetSessionByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTokenInvalid
		}
		return err
	}
	if session.Revoked {
		return domain.ErrTokenRevoked
	}

	return s.sessionRepository.RevokeSession(ctx, claims.SessionID)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserMeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserMeResponse{}, domain.ErrUserNotFound
		}
		return domain.UserMeResponse{}, err
	}

	return domain.UserMeResponse{
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UserUpdateRequest, userID string) (domain.UserMeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserMeResponse{}, domain.ErrUserNotFound
		}
		return domain.UserMeResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Password != "" {
		if len(req.Password) < 5 {
			return domain.UserMeResponse{}, domain.ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.UserMeResponse{}, domain.ErrHashPassword
		}
		user.Password = string(hashed)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserMeResponse{}, err
	}

	return domain.UserMeResponse{
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenReset(map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}, time.Minute*15)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", mailing.LoadMailConfig().AppURL, token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Click <a href=%q>here</a> to reset your password. The link expires in 15 minutes.</p>",
		user.Name, resetLink,
	)

	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenReset(req.Token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPassword
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}
