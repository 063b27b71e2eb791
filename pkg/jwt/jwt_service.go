package jwt

import (
	"errors"
	"fmt"
	"os"
	"time"

	"recipe-api/domain"
	"recipe-api/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenDuration  = time.Minute * 30
	RefreshTokenDuration = time.Hour * 24 * 7
)

type (
	JWTService interface {
		GenerateTokenPair(userID string, sessionID string) (string, string, error)
		ValidateToken(token string) (*AuthClaims, error)
		GenerateTokenReset(data map[string]any, duration time.Duration) (string, error)
		ValidateTokenReset(token string) (jwt.MapClaims, error)
	}

	// AuthClaims ride on both halves of a token pair. The session id links
	// the pair to its revocation record.
	AuthClaims struct {
		UserID    string `json:"user_id"`
		SessionID string `json:"session_id"`
		TokenType string `json:"token_type"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	if key := utils.GetConfig("JWT_SECRET"); key != "" {
		return key
	}
	return os.Getenv("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "RECIPE-API",
	}
}

func (j *jwtService) generateToken(userID, sessionID, tokenType string, duration time.Duration) (string, error) {
	claims := AuthClaims{
		userID,
		sessionID,
		tokenType,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) GenerateTokenPair(userID string, sessionID string) (string, string, error) {
	access, err := j.generateToken(userID, sessionID, TokenTypeAccess, AccessTokenDuration)
	if err != nil {
		return "", "", err
	}

	refresh, err := j.generateToken(userID, sessionID, TokenTypeRefresh, RefreshTokenDuration)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*AuthClaims, error) {
	t_Token, err := jwt.ParseWithClaims(token, &AuthClaims{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*AuthClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (j *jwtService) GenerateTokenReset(data map[string]any, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{}

	for key, value := range data {
		claims[key] = value
	}

	claims["exp"] = time.Now().Add(duration).Unix()
	claims["iat"] = time.Now().Unix()
	claims["iss"] = j.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) ValidateTokenReset(token string) (jwt.MapClaims, error) {
	t_Token, err := jwt.Parse(token, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.MapClaims{}, domain.ErrTokenExpired
		}
		return jwt.MapClaims{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return jwt.MapClaims{}, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}, domain.ErrTokenInvalid
	}
	return claims, nil
}
