// Package auth implements the session token layer: a signed JWT carrying the
// authenticated user's identifier and role, delivered as an HTTP-only cookie,
// plus the middleware guards that resolve it on each request.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kerudungstore/backend/internal/models"
)

// Session identifies the authenticated user bound to a request.
// It is a weak reference: only the identifier and role are carried,
// the full user row stays in storage.
type Session struct {
	UserID   int
	Username string
	Role     models.Role
}

// TokenGenerator handles session token generation and validation
type TokenGenerator struct {
	secret string
	expiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, expiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret: secret,
		expiry: expiry,
	}
}

// GenerateToken creates a session token with the user's id, username and role in the payload
func (tg *TokenGenerator) GenerateToken(userID int, username string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"role":     string(role),
		"exp":      time.Now().Add(tg.expiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a session token and returns the session it encodes
func (tg *TokenGenerator) ValidateToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	// Extract userID (JWT claims decode numbers as float64)
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("user_id not found in token")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, fmt.Errorf("username not found in token")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("role not found in token")
	}

	return &Session{
		UserID:   int(userIDFloat),
		Username: username,
		Role:     models.Role(role),
	}, nil
}

// Expiry returns the configured session lifetime
func (tg *TokenGenerator) Expiry() time.Duration {
	return tg.expiry
}
