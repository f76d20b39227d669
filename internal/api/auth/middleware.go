package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth gates protected routes. Requests without a session identity
// are silently redirected to the login page; otherwise the user ID is made
// available to the handler.
func (p *Provider) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionUserKey)
		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		id, ok := userID.(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(sessionUserKey, id)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the gin context.
// It is only valid behind RequireAuth.
func UserID(c *gin.Context) uint {
	return c.MustGet(sessionUserKey).(uint)
}
