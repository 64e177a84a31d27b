package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access token payload.
type Claims struct {
	Role   string `json:"role"`
	IsDemo bool   `json:"is_demo"`
	jwt.RegisteredClaims
}

// Payload describes a token to issue.
type Payload struct {
	UserID string
	Role   string
	IsDemo bool
	TTL    time.Duration
}

type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

type implManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}
