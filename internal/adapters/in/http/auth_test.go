package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T, at time.Time) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer([]byte("test-secret"), time.Hour, func() time.Time { return at })
	require.NoError(t, err)
	return issuer
}

func TestNewTokenIssuer(t *testing.T) {
	t.Run("should reject empty secret", func(t *testing.T) {
		_, err := NewTokenIssuer(nil, time.Hour, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt secret is empty")
	})

	t.Run("should reject non positive ttl", func(t *testing.T) {
		_, err := NewTokenIssuer([]byte("secret"), 0, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt ttl must be positive")
	})

	t.Run("should default clock to time.Now", func(t *testing.T) {
		issuer, err := NewTokenIssuer([]byte("secret"), time.Hour, nil)

		require.NoError(t, err)
		assert.NotNil(t, issuer)
	})
}

func TestTokenIssuer_Issue(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should issue verifiable token for known user", func(t *testing.T) {
		issuer := newIssuer(t, now)

		token, expiresAt, err := issuer.Issue("admin@admin.com", "Admin123!")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, now.Add(time.Hour), expiresAt)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "Admin", claims.Role)
		assert.Equal(t, "admin@admin.com", claims.Subject)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("should carry user role", func(t *testing.T) {
		issuer := newIssuer(t, now)

		token, _, err := issuer.Issue("user@someuser.com", "User123!")

		require.NoError(t, err)
		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "User", claims.Role)
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		issuer := newIssuer(t, now)

		_, _, err := issuer.Issue("admin@admin.com", "wrong")

		assert.ErrorIs(t, err, errInvalidCredentials)
	})

	t.Run("should reject unknown user", func(t *testing.T) {
		issuer := newIssuer(t, now)

		_, _, err := issuer.Issue("nobody@example.com", "Admin123!")

		assert.ErrorIs(t, err, errInvalidCredentials)
	})
}

func TestTokenIssuer_Verify(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should reject expired token", func(t *testing.T) {
		issuer := newIssuer(t, now)
		token, _, err := issuer.Issue("admin@admin.com", "Admin123!")
		require.NoError(t, err)

		later, err := NewTokenIssuer([]byte("test-secret"), time.Hour,
			func() time.Time { return now.Add(2 * time.Hour) })
		require.NoError(t, err)

		_, err = later.Verify(token)
		require.Error(t, err)
	})

	t.Run("should reject token signed with different secret", func(t *testing.T) {
		issuer := newIssuer(t, now)
		token, _, err := issuer.Issue("admin@admin.com", "Admin123!")
		require.NoError(t, err)

		other, err := NewTokenIssuer([]byte("other-secret"), time.Hour, func() time.Time { return now })
		require.NoError(t, err)

		_, err = other.Verify(token)
		require.Error(t, err)
	})

	t.Run("should reject garbage token", func(t *testing.T) {
		issuer := newIssuer(t, now)

		_, err := issuer.Verify("not.a.token")

		require.Error(t, err)
	})
}

func TestBearerToken(t *testing.T) {
	newContext := func(authorization string) echo.Context {
		e := echo.New()
		req := httptest.NewRequest("GET", "/", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("should extract bearer token", func(t *testing.T) {
		token, ok := bearerToken(newContext("Bearer abc.def.ghi"))

		assert.True(t, ok)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("should reject missing header", func(t *testing.T) {
		_, ok := bearerToken(newContext(""))

		assert.False(t, ok)
	})

	t.Run("should reject non bearer scheme", func(t *testing.T) {
		_, ok := bearerToken(newContext("Basic dXNlcjpwYXNz"))

		assert.False(t, ok)
	})
}
