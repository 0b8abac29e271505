package jwt

import (
	"errors"
	"time"

	"medicenter-portal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the portal session token payload. The token carries no upstream
// credential; SessionID keys the Redis record that owns the upstream bearer
// token.
type Claims struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	config config.SessionConfig
}

func NewTokenService(cfg config.SessionConfig) *TokenService {
	return &TokenService{config: cfg}
}

func (s *TokenService) GenerateSessionToken(sessionID uuid.UUID, userID, role string) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		UserID:    userID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *TokenService) GetExpiry() time.Duration {
	return s.config.Expiry
}
