package utils

import (
	"github.com/gin-gonic/gin"
)

// envelope is the wire shape shared by every endpoint: the HTTP status is
// repeated in the body so clients parsing only the payload see it too.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResponse sends a success envelope carrying data
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// JSONError sends an error envelope. The message is the client-facing text;
// err carries the wrapped detail.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, envelope{
		Status:  status,
		Message: message,
		Error:   err.Error(),
	})
}
