package util

import "github.com/gin-gonic/gin"

// Error writes the uniform error body used across the API. Clients
// display the message directly.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}
