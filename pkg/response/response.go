package response

import (
	"log"
	"net/http"

	"anoa.com/newshub/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetUserID retrieves the user ID set by the identity middleware. Requests
// without an identity header run as "anonymous".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("user_id")
	if !exists {
		return "anonymous"
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "anonymous"
	}
	return id
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"success": false, "error": err.Error()})
}
