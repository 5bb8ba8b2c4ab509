package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statuscode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// HandleResponse writes the standard response envelope.
func HandleResponse(c *gin.Context, success bool, statuscode int, message string, data ...interface{}) {
	resp := APIResponse{Success: success, StatusCode: statuscode, Message: message}
	if len(data) > 0 && data[0] != nil {
		resp.Data = data[0]
	}
	c.JSON(statuscode, resp)
}

// ErrorHandler is a middleware to catch panics and return structured errors.
// Stack traces are logged, never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, APIResponse{
					Success:    false,
					StatusCode: http.StatusInternalServerError,
					Message:    "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
