package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/services"
)

const (
	userIDKey   = "auth_user_id"
	usernameKey = "auth_username"
)

// BearerToken pulls the raw token out of the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth rejects unauthenticated callers before the handler body runs.
// A valid, unrevoked token puts the caller's identity into the context.
func RequireAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, "login required")
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		revoked, err := auth.IsRevoked(c.Request.Context(), claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "session check failed",
				"request_id": GetRequestID(c),
			})
			return
		}
		if revoked {
			abortUnauthorized(c, "session has been logged out")
			return
		}

		if id, ok := claims["user_id"].(float64); ok {
			c.Set(userIDKey, int64(id))
		}
		if name, ok := claims["username"].(string); ok {
			c.Set(usernameKey, name)
		}

		if _, ok := c.Get(userIDKey); !ok {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"login":      "/api/auth/login",
		"request_id": GetRequestID(c),
	})
}

// CurrentUser returns the authenticated identity set by RequireAuth.
func CurrentUser(c *gin.Context) (int64, string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, "", false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, "", false
	}
	name, _ := c.Get(usernameKey)
	username, _ := name.(string)
	return id, username, true
}
