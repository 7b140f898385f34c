// Package utils holds the shared response envelope. Every endpoint answers
// {success, data?, error?} so clients never special-case shapes per route.
package utils

import "github.com/gin-gonic/gin"

func RespondWithData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// CurrentUser extracts the authenticated user id set by the auth middleware.
func CurrentUser(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
