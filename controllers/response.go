package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// respondData writes the success envelope shared by all endpoints
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes the error envelope shared by all endpoints
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// isDuplicateKeyError detects unique-constraint violations by message,
// which works with both PostgreSQL and SQLite drivers
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
