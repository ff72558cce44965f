package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/geoyouth/league-api/internal/core/domain"
)

// DefaultTokenTTL is the fixed lifetime of issued bearer tokens.
const DefaultTokenTTL = time.Hour

// TokenClaims is the decoded identity carried by a verified token.
type TokenClaims struct {
	UserID int64
	Role   string
}

// TokenIssuer mints and verifies HS256-signed bearer tokens binding
// {userId, role} with a fixed expiry. The signing secret is injected from
// configuration at construction, never read from ambient state.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity, expiring ttl from now.
func (t *TokenIssuer) Issue(userID int64, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, rejecting malformed, expired,
// wrongly-signed and non-HMAC tokens. On success it returns the decoded
// identity.
func (t *TokenIssuer) Verify(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return &TokenClaims{UserID: int64(userID), Role: role}, nil
}
