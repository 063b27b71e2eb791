package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipe-api/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	registered []domain.UserRegisterRequest
	loginErr   error
	meErr      error
}

func (f *fakeUserService) RegisterUser(_ context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	f.registered = append(f.registered, req)
	return domain.UserRegisterResponse{ID: testUserID, Email: req.Email, Name: req.Name}, nil
}

func (f *fakeUserService) Login(_ context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	if f.loginErr != nil {
		return domain.UserLoginResponse{}, f.loginErr
	}
	return domain.UserLoginResponse{UserID: testUserID, Username: req.Username, Access: "a", Refresh: "r"}, nil
}

func (f *fakeUserService) Logout(_ context.Context, _ domain.UserLogoutRequest) error {
	return nil
}

func (f *fakeUserService) Me(_ context.Context, _ string) (domain.UserMeResponse, error) {
	if f.meErr != nil {
		return domain.UserMeResponse{}, f.meErr
	}
	return domain.UserMeResponse{Name: "Test User", Email: "user@example.com"}, nil
}

func (f *fakeUserService) UpdateUser(_ context.Context, req domain.UserUpdateRequest, _ string) (domain.UserMeResponse, error) {
	return domain.UserMeResponse{Name: req.Name, Email: "user@example.com"}, nil
}

func (f *fakeUserService) ForgotPassword(_ context.Context, _ domain.ForgotPasswordRequest) error {
	return nil
}

func (f *fakeUserService) ResetPassword(_ context.Context, _ domain.ResetPasswordRequest) error {
	return nil
}

func newUserApp(svc *fakeUserService) *fiber.App {
	app := fiber.New()
	handler := NewUserHandler(svc, validator.New())

	user := app.Group("/api/user")
	user.Post("/create", handler.Register)
	user.Post("/login", handler.Login)
	user.Get("/me", testAuth, handler.Me)
	user.Patch("/me", testAuth, handler.UpdateUser)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestRegisterUser(t *testing.T) {
	svc := &fakeUserService{}
	app := newUserApp(svc)

	res := postJSON(t, app, "/api/user/create", `{"email": "user@example.com", "password": "secret123", "name": "Test User"}`)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	require.Len(t, svc.registered, 1)
	assert.Equal(t, "user@example.com", svc.registered[0].Email)
}

func TestRegisterUserRejectsBadEmail(t *testing.T) {
	svc := &fakeUserService{}
	app := newUserApp(svc)

	res := postJSON(t, app, "/api/user/create", `{"email": "not-an-email", "password": "secret123", "name": "Test User"}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Empty(t, svc.registered)
}

func TestRegisterUserRejectsShortPasswordBeforeService(t *testing.T) {
	svc := &fakeUserService{}
	app := newUserApp(svc)

	res := postJSON(t, app, "/api/user/create", `{"email": "user@example.com", "password": "pw", "name": "Test User"}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Empty(t, svc.registered)
}

// Bad credentials are a request problem, not a challenge, so the handler
// answers 400 rather than 401.
func TestLoginBadCredentialsIsBadRequest(t *testing.T) {
	svc := &fakeUserService{loginErr: domain.ErrCredentialsInvalid}
	app := newUserApp(svc)

	res := postJSON(t, app, "/api/user/login", `{"username": "user@example.com", "password": "wrong"}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	parsed := decodeResponse(t, res)
	assert.Equal(t, domain.ErrCredentialsInvalid.Error(), parsed.Error)
}

func TestMe(t *testing.T) {
	app := newUserApp(&fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestMeWithWrongMethodIsMethodNotAllowed(t *testing.T) {
	app := newUserApp(&fakeUserService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/me", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, res.StatusCode)
}
