package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response data uses a plain map; every payload carries a "status"
// discriminator so clients can branch without inspecting HTTP codes.
type Response map[string]interface{}

// Success writes a success-shaped JSON body merged with data.
func Success(c *gin.Context, data Response) {
	body := gin.H{"status": "success"}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error writes an error-shaped JSON body with a human-readable message.
// No internals or stack traces leave the server.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"status":  "error",
		"message": msg,
	})
}
