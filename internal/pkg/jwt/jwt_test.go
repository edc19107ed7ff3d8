package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken("alice", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned an empty token")
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("claims.Username = %q, want alice", claims.Username)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("alice", "secret-one", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token, "secret-two"); err == nil {
		t.Error("ValidateToken should reject a token signed with a different secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("alice", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Error("ValidateToken should reject an expired token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "test-secret"); err == nil {
		t.Error("ValidateToken should reject malformed input")
	}
}
