package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/logging"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	httperr.Respond(c, err)
	return w
}

func TestRespond(t *testing.T) {
	logging.Silence()

	cases := []struct {
		err    error
		status int
		body   string
	}{
		{httperr.ErrValidation("Missing required field: name"), http.StatusBadRequest, `{"error":"Missing required field: name"}`},
		{httperr.ErrUnauthorized("Access token required"), http.StatusUnauthorized, `{"error":"Access token required"}`},
		{httperr.ErrForbidden("Invalid or expired token"), http.StatusForbidden, `{"error":"Invalid or expired token"}`},
		{httperr.ErrNotFound("Service not found"), http.StatusNotFound, `{"error":"Service not found"}`},
		{httperr.ErrUnsupportedMedia("Only images"), http.StatusUnsupportedMediaType, `{"error":"Only images"}`},
		{httperr.ErrPayloadTooLarge("File too large"), http.StatusRequestEntityTooLarge, `{"error":"File too large"}`},
		{httperr.ErrStore("Failed to load services", errors.New("pq: connection reset")), http.StatusInternalServerError, `{"error":"Failed to load services"}`},
		{fmt.Errorf("wrapped: %w", httperr.ErrNotFound("Master not found")), http.StatusNotFound, `{"error":"Master not found"}`},
		{errors.New("secret internals"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tc := range cases {
		w := respond(tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.JSONEq(t, tc.body, w.Body.String())
	}
}

func TestIs(t *testing.T) {
	cause := errors.New("boom")
	err := httperr.ErrStore("Failed", cause)

	assert.True(t, httperr.Is(err, httperr.KindStore))
	assert.False(t, httperr.Is(err, httperr.KindNotFound))
	assert.ErrorIs(t, err, cause)
	assert.False(t, httperr.Is(cause, httperr.KindStore))
}
