package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity reads the caller's identity from the X-User-ID header. There is
// no authentication; the id only namespaces profiles and interaction logs.
// Requests without the header run as "anonymous".
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			userID = "anonymous"
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
