package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tasky-app/tasky-api/internal/constants"
)

var (
	ErrTokenMissing = errors.New("authentication token required")
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// Claims is the JWT payload binding a token to a user.
type Claims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless bearer tokens. No server-side
// session state exists; the signed token is the sole session artifact.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		lifetime: constants.TokenLifetime,
	}
}

// Issue signs a token for the given user, valid for seven days.
func (s *TokenService) Issue(userID uint64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify parses and validates a token, returning the bound user ID.
func (s *TokenService) Verify(tokenStr string) (uint64, error) {
	if tokenStr == "" {
		return 0, ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
