package authUtils

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("64f1b2a3c4d5e6f7a8b9c0d1", "user"); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestGenerateTokenClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRE", "1h")

	tokenString, err := GenerateToken("64f1b2a3c4d5e6f7a8b9c0d1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parsing generated token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected MapClaims")
	}
	if claims["id"] != "64f1b2a3c4d5e6f7a8b9c0d1" {
		t.Errorf("id claim = %v", claims["id"])
	}
	if claims["type"] != "admin" {
		t.Errorf("type claim = %v", claims["type"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Error("exp claim missing")
	}
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateToken("64f1b2a3c4d5e6f7a8b9c0d1", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil && token.Valid {
		t.Error("token validated with the wrong secret")
	}
}
