package user

import (
	"context"
	"testing"
	"time"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	usersByID    map[string]*entities.User
	usersByEmail map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByID:    map[string]*entities.User{},
		usersByEmail: map[string]*entities.User{},
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.usersByID[user.ID.String()] = user
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.usersByID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.usersByID[user.ID.String()] = user
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.usersByEmail[email]
	return ok, nil
}

type fakeSessionRepository struct {
	sessions map[string]*entities.AuthSession
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]*entities.AuthSession{}}
}

func (f *fakeSessionRepository) CreateSession(_ context.Context, session *entities.AuthSession) error {
	f.sessions[session.ID.String()] = session
	return nil
}

func (f *fakeSessionRepository) GetSessionByID(_ context.Context, id string) (*entities.AuthSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (f *fakeSessionRepository) RevokeSession(_ context.Context, id string) error {
	session, ok := f.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	session.Revoked = true
	session.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepository) IsSessionActive(_ context.Context, id string) (bool, error) {
	session, ok := f.sessions[id]
	if !ok {
		return false, nil
	}
	return !session.Revoked && session.ExpiresAt.After(time.Now()), nil
}

func newTestUserService(t *testing.T) (UserService, *fakeUserRepository, *fakeSessionRepository) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	svc := NewUserService(users, sessions, jwt.NewJWTService())
	return svc, users, sessions
}

func registerTestUser(t *testing.T, svc UserService) domain.UserRegisterResponse {
	res, err := svc.RegisterUser(context.Background(), domain.UserRegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
		Name:     "Test User",
	})
	require.NoError(t, err)
	return res
}

func TestRegisterUserHashesPassword(t *testing.T) {
	svc, users, _ := newTestUserService(t)

	res := registerTestUser(t, svc)
	assert.Equal(t, "user@example.com", res.Email)
	assert.Equal(t, "Test User", res.Name)
	require.NotEmpty(t, res.ID)

	stored := users.usersByEmail["user@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.RegisterUser(context.Background(), domain.UserRegisterRequest{
		Email:    "user@example.com",
		Password: "pw",
		Name:     "Test User",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	registerTestUser(t, svc)

	_, err := svc.RegisterUser(context.Background(), domain.UserRegisterRequest{
		Email:    "user@example.com",
		Password: "another123",
		Name:     "Other",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginIssuesTokenPairAndSession(t *testing.T) {
	svc, _, sessions := newTestUserService(t)
	registered := registerTestUser(t, svc)

	res, err := svc.Login(context.Background(), domain.UserLoginRequest{
		Username: "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, res.UserID)
	assert.Equal(t, "Test User", res.Username)
	assert.NotEmpty(t, res.Access)
	assert.NotEmpty(t, res.Refresh)
	assert.Len(t, sessions.sessions, 1)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), domain.UserLoginRequest{
		Username: "user@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.Login(context.Background(), domain.UserLoginRequest{
		Username: "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newTestUserService(t)
	registerTestUser(t, svc)

	res, err := svc.Login(context.Background(), domain.UserLoginRequest{
		Username: "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), domain.UserLogoutRequest{RefreshToken: res.Refresh})
	require.NoError(t, err)

	for _, session := range sessions.sessions {
		assert.True(t, session.Revoked)
	}

	// a second logout with the same token is a client error
	err = svc.Logout(context.Background(), domain.UserLogoutRequest{RefreshToken: res.Refresh})
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
}

func TestLogoutRejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	registerTestUser(t, svc)

	res, err := svc.Login(context.Background(), domain.UserLoginRequest{
		Username: "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), domain.UserLogoutRequest{RefreshToken: res.Access})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestLogoutRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	err := svc.Logout(context.Background(), domain.UserLogoutRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestMeReturnsProfile(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	registered := registerTestUser(t, svc)

	res, err := svc.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", res.Name)
	assert.Equal(t, "user@example.com", res.Email)
}

func TestMeUnknownUser(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.Me(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUserKeepsPasswordWhenAbsent(t *testing.T) {
	svc, users, _ := newTestUserService(t)
	registered := registerTestUser(t, svc)
	before := users.usersByID[registered.ID].Password

	res, err := svc.UpdateUser(context.Background(), domain.UserUpdateRequest{Name: "Renamed"}, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", res.Name)
	assert.Equal(t, before, users.usersByID[registered.ID].Password)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, users, _ := newTestUserService(t)
	registered := registerTestUser(t, svc)
	before := users.usersByID[registered.ID].Password

	_, err := svc.UpdateUser(context.Background(), domain.UserUpdateRequest{Password: "newsecret"}, registered.ID)
	require.NoError(t, err)

	after := users.usersByID[registered.ID].Password
	assert.NotEqual(t, before, after)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after), []byte("newsecret")))
}

func TestResetPasswordWithValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	jwtService := jwt.NewJWTService()
	svc := NewUserService(users, sessions, jwtService)
	registered := registerTestUser(t, svc)

	token, err := jwtService.GenerateTokenReset(map[string]any{
		"user_id": registered.ID,
		"email":   registered.Email,
	}, time.Minute)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new",
	})
	require.NoError(t, err)

	stored := users.usersByID[registered.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("brand-new")))
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       "bogus",
		NewPassword: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
