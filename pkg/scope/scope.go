package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockery --name Manager
type Manager interface {
	// Verify parses an HS256 token and returns its claims.
	Verify(tokenString string) (Claims, error)
	// Generate signs a token for the payload. A zero TTL uses the configured one.
	Generate(p Payload) (string, error)
}

// New creates a JWT manager.
func New(cfg Config) (Manager, error) {
	if cfg.SecretKey == "" {
		return nil, ErrEmptySecret
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	return &implManager{
		secret: []byte(cfg.SecretKey),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

func (m *implManager) Verify(tokenString string) (Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{jwt.WithTimeFunc(m.now)}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	if claims.Role == "" {
		return Claims{}, fmt.Errorf("%w: role", ErrMissingClaim)
	}

	return claims, nil
}

func (m *implManager) Generate(p Payload) (string, error) {
	if p.UserID == "" {
		return "", fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	ttl := p.TTL
	if ttl <= 0 {
		ttl = m.ttl
	}

	now := m.now()
	claims := Claims{
		Role:   p.Role,
		IsDemo: p.IsDemo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}
