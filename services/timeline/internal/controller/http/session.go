package http

import (
	"errors"
	"net/http"

	"sns-app/pkg/middleware"
	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// RequireSession resolves the viewer from the access token. Requests without
// one are handed to onMissing and aborted.
func RequireSession(uc usecase.TimelineUseCase, onMissing gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := uc.CurrentSession(c.Request.Context(), middleware.AccessToken(c))
		if err != nil {
			onMissing(c)
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Set(middleware.UserIDKey, session.UserID)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
}

func unauthorizedJSON(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}

var errNoSession = errors.New("no session in request context")

func sessionFrom(c *gin.Context) (*entity.Session, error) {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil, errNoSession
	}
	session, ok := value.(*entity.Session)
	if !ok || session == nil {
		return nil, errNoSession
	}
	return session, nil
}
