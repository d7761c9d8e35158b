// Package auth mints and verifies the role-carrying session tokens issued
// after a successful login.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"payledger/internal/common"
	"payledger/internal/models"
)

// Claims extends the registered JWT claims with the authenticated user's
// id and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Role   models.Role
}

// GenerateToken signs an HS256 session token for the given user and role.
func GenerateToken(userID string, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetClaimsFromToken parses and verifies a session token, returning its claims.
func GetClaimsFromToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
