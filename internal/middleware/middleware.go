package middleware

import (
	"strings"

	"recipe-api/domain"
	"recipe-api/internal/api/presenters"
	"recipe-api/pkg/auth"
	"recipe-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct {
		sessionRepository auth.SessionRepository
	}
)

func NewMiddleware(sessionRepository auth.SessionRepository) Middleware {
	return &middleware{sessionRepository: sessionRepository}
}

// AuthMiddleware accepts a bearer access token and checks its session
// against the revocation store on every request, so a logged-out pair is
// rejected even before the access token expires.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenInvalid)
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}
		if claims.TokenType != jwt.TokenTypeAccess {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		active, err := m.sessionRepository.IsSessionActive(c.Context(), claims.SessionID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}
		if !active {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenRevoked)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("session_id", claims.SessionID)
		return c.Next()
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, PUT, DELETE, OPTIONS",
	})
}
