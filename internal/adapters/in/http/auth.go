package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errInvalidCredentials = errors.New("invalid email or password")

// demoUser is a credential pair the login endpoint accepts. Real identity
// management is out of scope; these accounts exist so the API is usable
// end to end in dev environments.
type demoUser struct {
	password string
	role     string
}

var demoUsers = map[string]demoUser{
	"admin@admin.com":   {password: "Admin123!", role: "Admin"},
	"user@someuser.com": {password: "User123!", role: "User"},
}

// tokenClaims are the JWT claims carried by issued tokens.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the service's HS256 JWTs.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

// NewTokenIssuer creates an issuer with the given signing secret and token
// lifetime. The clock is injected so expiry is deterministic under test.
func NewTokenIssuer(secret []byte, ttl time.Duration, clock func() time.Time) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	if clock == nil {
		clock = time.Now
	}

	return &TokenIssuer{secret: secret, ttl: ttl, clock: clock}, nil
}

// Issue authenticates the credentials against the known users and returns
// a signed token with its expiry. Wrong credentials return
// errInvalidCredentials without revealing which part was wrong.
func (t *TokenIssuer) Issue(email, password string) (string, time.Time, error) {
	user, ok := demoUsers[email]
	if !ok || user.password != password {
		return "", time.Time{}, errInvalidCredentials
	}

	now := t.clock().UTC()
	expiresAt := now.Add(t.ttl)

	claims := tokenClaims{
		Role: user.role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify parses and validates a bearer token, returning its claims.
func (t *TokenIssuer) Verify(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.clock))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(ctx echo.Context) (string, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix)), true
}
