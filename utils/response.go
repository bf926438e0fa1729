package utils

import (
	"os"

	"github.com/gin-gonic/gin"
)

// JSONSuccess writes the standard success envelope: {message, <payload...>}.
func JSONSuccess(c *gin.Context, code int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}

// JSONError writes the standard error envelope. Internal error detail is
// only included outside release mode.
func JSONError(c *gin.Context, code int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil && os.Getenv("GIN_MODE") != "release" {
		body["error"] = err.Error()
	}
	c.JSON(code, body)
}
