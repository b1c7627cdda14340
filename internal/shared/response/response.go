package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the single outward error shape. Timestamp is ISO-8601.
type ErrorBody struct {
	Message   string   `json:"message"`
	Status    int      `json:"status"`
	Timestamp string   `json:"timestamp"`
	Errors    []string `json:"errors,omitempty"`
}

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func NoContent(c *gin.Context) {
	c.Status(204)
}

func Error(c *gin.Context, status int, message string, details []string) {
	c.JSON(status, ErrorBody{
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Errors:    details,
	})
}
