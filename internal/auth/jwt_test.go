package auth

import (
	"testing"

	"warehouse-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret-at-least-32-characters-long"
	user := &models.User{Username: "warehouse-admin", Role: models.RoleAdmin}
	user.ID = 7

	signed, err := GenerateToken(secret, user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(signed, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parsing token: %v", err)
	}

	claims := token.Claims.(*JWTCustomClaims)
	if claims.UserID != 7 || claims.Username != "warehouse-admin" || claims.Role != models.RoleAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Error("expected expiry after issue time")
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{Username: "worker", Role: models.RoleOperator}
	user.ID = 1

	signed, err := GenerateToken("correct-secret-at-least-32-chars-x", user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = jwt.ParseWithClaims(signed, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("different-secret-at-least-32-char"), nil
	})
	if err == nil {
		t.Error("expected signature verification to fail")
	}
}
