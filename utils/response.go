package utils

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the per-request ID
const RequestIDKey = "request_id"

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. The request ID, when the
// middleware assigned one, is echoed so clients can quote it.
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if id := c.GetString(RequestIDKey); id != "" {
		body[RequestIDKey] = id
	}
	c.JSON(status, body)
}
