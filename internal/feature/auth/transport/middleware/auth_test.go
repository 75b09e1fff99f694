package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockSessionResolver resolves a fixed cookie value to a fixed user ID.
type mockSessionResolver struct {
	sessionID string
	userID    uint
}

func (m *mockSessionResolver) ResolveSession(ctx context.Context, sessionID string) (uint, error) {
	if sessionID == m.sessionID {
		return m.userID, nil
	}
	return 0, errors.New("session not found")
}

// mockTokenParser accepts a fixed bearer token for a fixed user ID.
type mockTokenParser struct {
	token  string
	userID uint
}

func (m *mockTokenParser) ParseToken(token string) (uint, error) {
	if token == m.token {
		return m.userID, nil
	}
	return 0, errors.New("invalid token")
}

func newAuthContext(t *testing.T, cookie, authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c, w
}

func TestAuthRequired_SessionCookie(t *testing.T) {
	sessions := &mockSessionResolver{sessionID: "valid-session", userID: 7}
	tokens := &mockTokenParser{}
	handler := AuthRequired(sessions, tokens)

	t.Run("valid cookie passes", func(t *testing.T) {
		c, w := newAuthContext(t, "valid-session", "")

		handler(c)

		if c.IsAborted() {
			t.Fatalf("expected request not to be aborted, response: %s", w.Body.String())
		}
		userID, exists := c.Get(ContextUserID)
		if !exists {
			t.Fatal("expected userID to be set in context")
		}
		if userID.(uint) != 7 {
			t.Errorf("expected userID 7, got %d", userID)
		}
	})

	t.Run("unknown cookie rejected", func(t *testing.T) {
		c, w := newAuthContext(t, "stale-session", "")

		handler(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
		if !c.IsAborted() {
			t.Error("expected request to be aborted")
		}
		if !strings.Contains(w.Body.String(), "Not authenticated") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthRequired_BearerToken(t *testing.T) {
	sessions := &mockSessionResolver{sessionID: "valid-session", userID: 7}
	tokens := &mockTokenParser{token: "valid-token", userID: 42}
	handler := AuthRequired(sessions, tokens)

	t.Run("valid bearer token passes", func(t *testing.T) {
		c, w := newAuthContext(t, "", "Bearer valid-token")

		handler(c)

		if c.IsAborted() {
			t.Fatalf("expected request not to be aborted, response: %s", w.Body.String())
		}
		userID, exists := c.Get(ContextUserID)
		if !exists {
			t.Fatal("expected userID to be set in context")
		}
		if userID.(uint) != 42 {
			t.Errorf("expected userID 42, got %d", userID)
		}
	})

	t.Run("invalid bearer token rejected", func(t *testing.T) {
		c, w := newAuthContext(t, "", "Bearer forged-token")

		handler(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("stale cookie falls back to bearer token", func(t *testing.T) {
		c, w := newAuthContext(t, "stale-session", "Bearer valid-token")

		handler(c)

		if c.IsAborted() {
			t.Fatalf("expected request not to be aborted, response: %s", w.Body.String())
		}
		userID, _ := c.Get(ContextUserID)
		if userID.(uint) != 42 {
			t.Errorf("expected userID 42, got %d", userID)
		}
	})
}

func TestAuthRequired_NoCredentials(t *testing.T) {
	sessions := &mockSessionResolver{sessionID: "valid-session", userID: 7}
	tokens := &mockTokenParser{token: "valid-token", userID: 42}
	handler := AuthRequired(sessions, tokens)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer valid-token"},
		{"no space after Bearer", "Bearervalid-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newAuthContext(t, "", tt.authHeader)

			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

func TestAuthRequired_CookieTakesPrecedence(t *testing.T) {
	sessions := &mockSessionResolver{sessionID: "valid-session", userID: 7}
	tokens := &mockTokenParser{token: "valid-token", userID: 42}
	handler := AuthRequired(sessions, tokens)

	c, w := newAuthContext(t, "valid-session", "Bearer valid-token")

	handler(c)

	if c.IsAborted() {
		t.Fatalf("expected request not to be aborted, response: %s", w.Body.String())
	}
	userID, _ := c.Get(ContextUserID)
	if userID.(uint) != 7 {
		t.Errorf("expected the session user 7, got %d", userID)
	}
}
