package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

// Respond writes err using its taxonomy status. Store failures and unknown
// errors are logged and reduced to their public message.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		Internal(c, "Internal server error")
		return
	}

	if e.Kind == KindStore {
		log.Error().Err(e.Err).Str("path", c.FullPath()).Msg(e.Message)
	}
	Write(c, e.Status(), e.Message)
}
