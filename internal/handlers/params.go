package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/storage"
)

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead = 1 << 20

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// readUpload pulls a single file field out of a multipart request, enforcing
// maxBytes on the file.
func readUpload(c *gin.Context, field string, maxBytes int64, missingMsg string) (storage.Upload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	fh, err := c.FormFile(field)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return storage.Upload{}, httperr.ErrPayloadTooLarge("File too large")
		}
		return storage.Upload{}, httperr.ErrValidation(missingMsg)
	}

	data, err := storage.ReadUpload(fh, maxBytes)
	if err != nil {
		return storage.Upload{}, err
	}

	return storage.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
