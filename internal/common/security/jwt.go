package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs and verifies the bearer tokens guarding the API.
// The jwtauth handle doubles as the verifier used by the router middleware.
type TokenIssuer struct {
	auth *jwtauth.JWTAuth
	ttl  time.Duration
}

func NewTokenIssuer(key []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		auth: jwtauth.New("HS256", key, nil),
		ttl:  ttl,
	}
}

// Auth exposes the verifier for jwtauth.Verifier middleware.
func (t *TokenIssuer) Auth() *jwtauth.JWTAuth {
	return t.auth
}

// Generate issues a token carrying the user's email as its identity claim,
// expiring after the configured TTL.
func (t *TokenIssuer) Generate(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"exp":   now.Add(t.ttl).Unix(),
		"iat":   now.Unix(),
		"jti":   uuid.NewString(),
	}
	_, tokenString, err := t.auth.Encode(claims)
	return tokenString, err
}

// GetEmailFromClaims extracts the identity claim set by Generate.
func GetEmailFromClaims(claims map[string]interface{}) (string, error) {
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("email claim is missing or not a string")
	}
	return email, nil
}
