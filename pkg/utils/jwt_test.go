package utils

import (
	"testing"
)

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("7", "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != "7" || claims.Role != "user" {
		t.Errorf("claims = %q/%q, want 7/user", claims.UserID, claims.Role)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("missing expiry: %v", err)
	}
}

func TestParseJWTRejectsTampering(t *testing.T) {
	InitJWT("test-secret")
	token, err := GenerateJWT("7", "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token + "x"); err == nil {
		t.Error("tampered signature accepted")
	}

	// token signed under a different secret
	InitJWT("other-secret")
	if _, err := ParseJWT(token); err == nil {
		t.Error("token from different secret accepted")
	}
	InitJWT("test-secret")

	if _, err := ParseJWT("not.a.jwt"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored in plain text")
	}

	if !CheckPassword("secret123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
