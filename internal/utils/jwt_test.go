package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateJWT("doctor1", "doctor", secret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token, secret)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.Username != "doctor1" || claims.Role != "doctor" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("r1", "receptionist", []byte("secret-a"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(token, []byte("secret-b")); err == nil {
		t.Fatal("token validated with the wrong secret")
	}
}

func TestEmptySecretRefused(t *testing.T) {
	if _, err := GenerateJWT("u", "doctor", nil); err == nil {
		t.Fatal("GenerateJWT accepted an empty secret")
	}
	if _, err := ValidateJWT("whatever", nil); err == nil {
		t.Fatal("ValidateJWT accepted an empty secret")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("password123", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
