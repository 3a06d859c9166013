// Package auth holds the credential primitives: password hashing and the
// stateless session tokens that bind a request to a user identity.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. Handlers collapse all of them into one 401; the
// distinction exists for logs only.
var (
	ErrMalformed    = errors.New("token is malformed")
	ErrExpired      = errors.New("token is expired")
	ErrBadSignature = errors.New("token signature is invalid")
)

// Claims is the payload carried inside a session token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 session tokens. It keeps no state
// beyond the secret, so verification needs no store lookup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a manager around the server-held secret. The secret
// is injected, never read from a global.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Tests use it to fabricate expiry.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// Issue signs a token asserting userID, valid from now until now+ttl.
func (m *TokenManager) Issue(userID string) (string, error) {
	issued := m.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the signature and expiry and returns the embedded user ID.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", translateJWTError(err)
	}
	if claims.UserID == "" {
		return "", ErrMalformed
	}
	return claims.UserID, nil
}

func translateJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	default:
		return ErrBadSignature
	}
}
