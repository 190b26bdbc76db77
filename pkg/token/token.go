package token

import (
	"fmt"
	"time"

	"anoa.com/forumapi/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager signs and verifies the HS256 access and refresh tokens.
// Refresh tokens never expire on their own; they are revoked by deleting them
// from the authentications table.
type Manager struct {
	accessKey  []byte
	refreshKey []byte
	accessAge  time.Duration
}

func NewManager(accessKey, refreshKey string, accessAge time.Duration) *Manager {
	return &Manager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessAge:  accessAge,
	}
}

func (m *Manager) CreateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessAge)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.accessKey)
}

func (m *Manager) CreateRefreshToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.refreshKey)
}

// VerifyAccessToken returns the user id the token was issued to.
func (m *Manager) VerifyAccessToken(tokenString string) (string, error) {
	subject, err := parse(tokenString, m.accessKey)
	if err != nil {
		return "", apperror.Unauthorized("invalid or expired token")
	}
	return subject, nil
}

func (m *Manager) VerifyRefreshToken(tokenString string) (string, error) {
	subject, err := parse(tokenString, m.refreshKey)
	if err != nil {
		return "", apperror.BadRequest("refresh token tidak valid")
	}
	return subject, nil
}

func parse(tokenString string, key []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}
