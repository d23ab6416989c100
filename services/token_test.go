package services_test

import (
	"testing"
	"time"

	"main/services"
	"main/test/testutils"
	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

func init() {
	testutils.SetupTestEnvironment()
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := services.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, err := services.ParseToken(token, "access")
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("Expected user-1, got %q", userID)
	}
}

func TestParseTokenWrongType(t *testing.T) {
	refresh, err := services.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	// A refresh token is not accepted where an access token is expected
	if _, err := services.ParseToken(refresh, "access"); err == nil {
		t.Fatal("Refresh token accepted as access token")
	}
	if _, err := services.ParseToken(refresh, "refresh"); err != nil {
		t.Fatalf("Refresh token rejected as refresh token: %v", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"type":    "access",
		"iss":     services.TokenIssuer,
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := services.ParseToken(token, "access"); err == nil {
		t.Fatal("Expired token accepted")
	}
}

func TestParseTokenWrongSignature(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"type":    "access",
		"iss":     services.TokenIssuer,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some_other_secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := services.ParseToken(token, "access"); err == nil {
		t.Fatal("Token with wrong signature accepted")
	}
}

func TestParseTokenWrongIssuer(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"type":    "access",
		"iss":     "someone-else",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := services.ParseToken(token, "access"); err == nil {
		t.Fatal("Token with wrong issuer accepted")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := services.ParseToken("not.a.token", "access"); err == nil {
		t.Fatal("Garbage token accepted")
	}
}
