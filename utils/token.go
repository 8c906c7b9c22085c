package authUtils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken mints a signed JWT for a user or admin account. The type
// claim ("user" or "admin") tells the auth middleware which collection to
// resolve the principal from.
func GenerateToken(id string, accountType string) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	expire := 720 * time.Hour
	if v := os.Getenv("JWT_EXPIRE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			expire = d
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"type": accountType,
		"exp":  time.Now().Add(expire).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretStr))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
