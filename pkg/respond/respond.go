// Package respond translates use case outcomes into gin responses.
package respond

import (
	"errors"
	"net/http"

	"newsboard/pkg/apperr"
	"newsboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrAlreadyLiked),
		errors.Is(err, apperr.ErrNotLiked):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err. Unexpected errors are logged and answered with a bare 500.
func Error(c *gin.Context, log *logger.Logger, err error) {
	if !apperr.IsExpected(err) {
		if log != nil {
			log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	status := Status(err)

	msgs := apperr.Messages(err)
	if len(msgs) == 1 {
		c.JSON(status, gin.H{"error": msgs[0]})
		return
	}
	c.JSON(status, gin.H{"error": msgs})
}

// BadRequest reports a payload that could not be decoded.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
