// Package respond collapses the error taxonomy (not-found, validation,
// unhandled) to an HTTP status plus a {"message": ...} JSON body.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorBody struct {
	Message string `json:"message"`
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, errorBody{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorBody{Message: message})
}

// ServerError logs the cause and returns a generic body; internals are never
// echoed to the caller.
func ServerError(c *gin.Context, err error) {
	zap.S().Errorw("unhandled error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, errorBody{Message: "Internal server error"})
}
