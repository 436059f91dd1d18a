package tokens

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/legalease/legalease-backend/internal/config"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TokenTTL = 7 * 24 * time.Hour
	return cfg
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := testConfig("test-secret-32-bytes-should-be-long")

	tokenStr, err := GenerateToken(cfg, "user-123")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	uid, err := VerifyToken(cfg, tokenStr)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("unexpected userId: got=%v want=user-123", uid)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	cfg := testConfig("another-secret-32-bytes-longgggg")

	// sign a token whose expiry is already in the past; the signature itself is valid
	claims := jwt.MapClaims{
		"userId": "u2",
		"iat":    time.Now().Add(-2 * time.Hour).Unix(),
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := VerifyToken(cfg, tokenStr); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyToken_WrongSecretFails(t *testing.T) {
	cfg := testConfig("secret-one-32-bytes-xxxxxxxxxxxx")
	tokenStr, err := GenerateToken(cfg, "u3")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	other := testConfig("different-secret-xxxxxxxxxxxxxxx")
	if _, err := VerifyToken(other, tokenStr); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken with wrong secret, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	cfg := testConfig("x")
	if _, err := VerifyToken(cfg, "not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerifyToken_MissingUserID(t *testing.T) {
	cfg := testConfig("missing-claim-secret-xxxxxxxxxxx")
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := VerifyToken(cfg, tokenStr); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken when userId claim missing, got %v", err)
	}
}

// Tampering with the payload must fail signature verification
func TestVerifyToken_TamperedPayload(t *testing.T) {
	cfg := testConfig("tamper-test-secret-32-bytes-xxxx")
	tokenStr, err := GenerateToken(cfg, "user-t")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token parts")
	}
	payloadBytes, _ := base64.RawURLEncoding.DecodeString(parts[1])
	payloadStr := strings.Replace(string(payloadBytes), "user-t", "attacker", 1)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(payloadStr))
	if _, err := VerifyToken(cfg, strings.Join(parts, ".")); err != ErrInvalidToken {
		t.Fatalf("expected signature verification to fail for tampered token, got %v", err)
	}
}
