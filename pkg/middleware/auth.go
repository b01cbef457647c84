package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenKey = "access_token"
	UserIDKey      = "user_id"
)

// TokenMiddleware copies the caller's access token into the context. A
// "Bearer" Authorization header wins over the session cookie.
func TokenMiddleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := ExtractToken(c, cookieName); token != "" {
			c.Set(AccessTokenKey, token)
		}
		c.Next()
	}
}

func ExtractToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

func AccessToken(c *gin.Context) string {
	return c.GetString(AccessTokenKey)
}

// RequireToken aborts through onMissing when no token was extracted.
func RequireToken(onMissing gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if AccessToken(c) == "" {
			onMissing(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
