// Package auth implements the authentication core: bcrypt password hashing,
// HS256 bearer tokens, and the role/ownership checks used by protected
// endpoints.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the registered claims (Subject holds the
// username, ExpiresAt the expiry) plus the admin flag snapshot taken at
// login. Authorization always re-checks the live user record; the snapshot
// exists for the token contract only.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

// IssueToken signs a bearer token for the given username, valid for ttl.
func IssueToken(username string, isAdmin bool, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		IsAdmin: isAdmin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a bearer token and returns
// its claims. It fails with common.ErrTokenExpired for a well-formed but
// stale token and common.ErrInvalidToken for anything else (bad structure,
// wrong signature, unexpected signing method). The distinction is for
// diagnostics only; the HTTP boundary reports both uniformly.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
