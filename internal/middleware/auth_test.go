package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-site/internal/auth"
	"github.com/BruksfildServices01/barbershop-site/internal/middleware"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, raw string) (*auth.Identity, error) {
	switch raw {
	case "":
		return nil, auth.ErrTokenMissing
	case "good":
		return &auth.Identity{UserID: 7, Username: "admin"}, nil
	default:
		return nil, auth.ErrTokenInvalid
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", middleware.RequireAdmin(stubVerifier{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentIdentity(c))
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"no header", "", http.StatusUnauthorized, `{"error":"Access token required"}`},
		{"wrong scheme", "Basic Zm9vOmJhcg==", http.StatusUnauthorized, `{"error":"Access token required"}`},
		{"invalid token", "Bearer forged", http.StatusForbidden, `{"error":"Invalid or expired token"}`},
		{"valid token", "Bearer good", http.StatusOK, `{"id":7,"username":"admin"}`},
		{"lowercase scheme", "bearer good", http.StatusOK, `{"id":7,"username":"admin"}`},
	}

	r := newRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}
