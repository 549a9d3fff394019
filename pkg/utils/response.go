package utils

import "github.com/gin-gonic/gin"

// APIResponse writes the standard envelope: {"success": ..., "message": ...}
// with the payload keys merged in at the top level.
func APIResponse(c *gin.Context, code int, success bool, message string, payload gin.H) {
	body := gin.H{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}
