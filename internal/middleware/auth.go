package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys and the context key handlers read the caller id from.
const (
	SessionUserKey = "user_id"
	UserIDKey      = "user_id"
)

// AuthRequired ensures a live session is present before any business logic
// runs. Anonymous requests get a 401 and never reach the handler.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(SessionUserKey)
		if userID == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		id, ok := userID.(uint)
		if !ok || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id. Only valid behind
// AuthRequired.
func CurrentUserID(c *gin.Context) uint {
	return c.MustGet(UserIDKey).(uint)
}
