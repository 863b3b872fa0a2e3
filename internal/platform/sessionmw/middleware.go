// Package sessionmw provides Gin middleware gating routes on session state.
package sessionmw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "session_id"

	// ContextUserID is the gin context key holding the resolved user ID.
	ContextUserID = "userID"
)

// SessionResolver resolves a session token to the owning user ID.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type SessionResolver interface {
	// ResolveSession returns the user ID bound to the token, or an error
	// when the token is absent, unknown, or expired.
	ResolveSession(ctx context.Context, token string) (uint, error)
}

// AuthRequired returns a Gin middleware function that restricts access to
// requests carrying a resolvable session cookie. The resolved user ID is
// attached to the gin context; session state is never mutated here.
func AuthRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the session cookie
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		// 2. Re-resolve the principal from the server-side store on every request
		userID, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			// Unknown and expired tokens are indistinguishable to the client
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		// 3. Attach the principal to the request context
		c.Set(ContextUserID, userID)

		// 4. Pass control to the next handler
		c.Next()
	}
}

// GuestOnly returns a Gin middleware function that rejects requests which
// already carry a valid session. Applied to join/login so an authenticated
// client cannot re-register or re-login without logging out first.
func GuestOnly(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			// No cookie: anonymous, proceed
			c.Next()
			return
		}
		if _, err := resolver.ResolveSession(c.Request.Context(), token); err == nil {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "already logged in"})
			return
		}
		// Stale cookie resolves to nothing: treat as anonymous
		c.Next()
	}
}
