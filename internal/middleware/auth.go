package middleware

import (
	"net/http"
	"strings"

	"github.com/amanullahykhan/voice-chatbot-project/internal/store"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	// CtxUserID is the gin context key for the authenticated user id.
	CtxUserID = "userID"
	// CtxToken is the gin context key for the presented bearer token,
	// kept so the logout handler can revoke it.
	CtxToken = "authToken"
)

// ExtractToken pulls the bearer token from the Authorization header
// (with or without the "Bearer " prefix) or the auth_token cookie.
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return authHeader
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// Auth resolves the bearer token against the session store and puts
// the owning user id into the context. Every protected route runs
// behind this; nothing else checks tokens.
func Auth(sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			util.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userID, err := sessions.Resolve(token)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxToken, token)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by Auth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
