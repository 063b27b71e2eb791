package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-api/entities"
	"recipe-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

type authFixture struct {
	app      *fiber.App
	jwt      jwt.JWTService
	sessions *fakeSessionRepository
	userID   string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Setenv("JWT_SECRET", "test-secret")

	sessions := newFakeSessionRepository()
	jwtService := jwt.NewJWTService()
	mw := NewMiddleware(sessions)

	app := fiber.New()
	app.Get("/protected", mw.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})

	return &authFixture{
		app:      app,
		jwt:      jwtService,
		sessions: sessions,
		userID:   uuid.NewString(),
	}
}

func (f *authFixture) login(t *testing.T) (string, string, *entities.AuthSession) {
	t.Helper()

	session := &entities.AuthSession{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(f.userID),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, f.sessions.CreateSession(context.Background(), session))

	access, refresh, err := f.jwt.GenerateTokenPair(f.userID, session.ID.String())
	require.NoError(t, err)
	return access, refresh, session
}

func (f *authFixture) request(t *testing.T, authorization string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	res, err := f.app.Test(req)
	require.NoError(t, err)
	return res
}

func TestAuthMiddlewareAcceptsValidAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	access, _, _ := f.login(t)

	res := f.request(t, "Bearer "+access)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	f := newAuthFixture(t)

	res := f.request(t, "")
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareRejectsNonBearerHeader(t *testing.T) {
	f := newAuthFixture(t)
	access, _, _ := f.login(t)

	res := f.request(t, "Token "+access)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	f := newAuthFixture(t)

	res := f.request(t, "Bearer garbage")
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	_, refresh, _ := f.login(t)

	res := f.request(t, "Bearer "+refresh)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareRejectsRevokedSession(t *testing.T) {
	f := newAuthFixture(t)
	access, _, session := f.login(t)

	require.NoError(t, f.sessions.RevokeSession(context.Background(), session.ID.String()))

	res := f.request(t, "Bearer "+access)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareRejectsExpiredSession(t *testing.T) {
	f := newAuthFixture(t)

	session := &entities.AuthSession{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(f.userID),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, f.sessions.CreateSession(context.Background(), session))

	access, _, err := f.jwt.GenerateTokenPair(f.userID, session.ID.String())
	require.NoError(t, err)

	res := f.request(t, "Bearer "+access)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
