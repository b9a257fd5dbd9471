package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends the uniform JSON error envelope used by every handler.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
