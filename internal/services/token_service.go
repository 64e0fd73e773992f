package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
)

// tokenTTL is the validity window of an issued token. There is no refresh
// or revocation; a token simply dies at expiry.
const tokenTTL = time.Hour

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"id"`
}

// TokenService issues and verifies signed, time-bounded auth tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new TokenService. The caller is responsible for
// refusing to start without a secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token carrying the user ID, valid for one hour.
func (s *TokenService) Issue(userID uint64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token and returns the user ID it carries.
// The three failure modes are distinguishable for logging and tests; callers
// treat them all as unauthenticated.
func (s *TokenService) Verify(tokenString string) (uint64, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrSignatureInvalid
		default:
			return 0, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return 0, ErrTokenMalformed
	}

	return claims.UserID, nil
}
