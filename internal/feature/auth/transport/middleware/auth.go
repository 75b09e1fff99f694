// Package middleware provides the authentication middleware shared by
// every protected route.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todolist_backend/internal/shared/httpapi"
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "userID"

// sessionCookieName must match the cookie the auth handler issues.
const sessionCookieName = "todo_session"

// SessionResolver maps a session cookie value to a user ID.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (uint, error)
}

// TokenParser verifies a legacy bearer token and returns the user ID it
// was issued for.
type TokenParser interface {
	ParseToken(token string) (uint, error)
}

// AuthRequired returns a middleware that resolves the caller's identity
// before any handler runs. The session cookie is checked first; a
// Bearer token in the Authorization header is accepted as the legacy
// fallback. Both resolve to the same user ID contract, so downstream
// handlers never see which mechanism was used.
func AuthRequired(sessions SessionResolver, tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, err := c.Cookie(sessionCookieName); err == nil && sessionID != "" {
			if userID, err := sessions.ResolveSession(c.Request.Context(), sessionID); err == nil {
				c.Set(ContextUserID, userID)
				c.Next()
				return
			}
		}

		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			if userID, err := tokens.ParseToken(tokenStr); err == nil {
				c.Set(ContextUserID, userID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, httpapi.ErrorResponse{Message: "Not authenticated"})
	}
}
