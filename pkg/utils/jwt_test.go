package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	userID := primitive.NewObjectID()
	token, err := GenerateToken(userID, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID.Hex())
	}
	if !claims.IsAdmin() {
		t.Error("IsAdmin() = false for admin role")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(primitive.NewObjectID(), "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected validation failure after secret rotation")
	}
}

func TestIsAdmin(t *testing.T) {
	if (&UserClaims{Role: "user"}).IsAdmin() {
		t.Error("IsAdmin() = true for user role")
	}
}
