package jwtmanager

import (
	"fmt"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager issues and verifies the HS256 bearer tokens used by the admin
// dashboard.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) *JWTManager {
	return &JWTManager{
		log:    log,
		secret: []byte(cfg.JWT.Secret),
		ttl:    time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour,
	}
}

// CreateToken signs a token for the given subject with the configured TTL.
func (m *JWTManager) CreateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", exceptions.ErrAdminTokenInvalid(err)
	}
	return signed, nil
}

// VerifyToken validates the signature and expiry and returns the subject.
func (m *JWTManager) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", exceptions.ErrAdminTokenInvalid(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", exceptions.ErrAdminTokenInvalid(fmt.Errorf("unexpected claims type"))
	}
	return claims.Subject, nil
}
