package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barbershop-site/internal/auth"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
)

const ContextIdentity = "identity"

type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (*auth.Identity, error)
}

// RequireAdmin rejects requests without a bearer token with 401 and requests
// with an invalid or expired token with 403.
func RequireAdmin(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Verify(c.Request.Context(), bearerToken(c.GetHeader("Authorization")))
		switch {
		case err == nil:
		case errors.Is(err, auth.ErrTokenMissing):
			httperr.Unauthorized(c, "Access token required")
			return
		case errors.Is(err, auth.ErrTokenInvalid):
			httperr.Forbidden(c, "Invalid or expired token")
			return
		default:
			log.Error().Err(err).Msg("token verification failed")
			httperr.Internal(c, "Internal server error")
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireAdmin, or nil.
func CurrentIdentity(c *gin.Context) *auth.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	id, _ := v.(*auth.Identity)
	return id
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
