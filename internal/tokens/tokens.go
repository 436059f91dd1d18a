package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/legalease/legalease-backend/internal/config"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// token, expired token, missing userId claim. Callers must not be able to
// distinguish them.
var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken creates a signed JWT embedding the user id, valid for cfg.JWT.TokenTTL.
func GenerateToken(cfg *config.Config, userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(cfg.JWT.TokenTTL).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// VerifyToken validates signature and expiry and returns the embedded user id.
func VerifyToken(cfg *config.Config, raw string) (string, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// Verifier adapts the package functions to the middleware.TokenVerifier interface.
type Verifier struct {
	cfg *config.Config
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{cfg: cfg}
}

func (v *Verifier) VerifyToken(raw string) (string, error) {
	return VerifyToken(v.cfg, raw)
}
