package middleware

import (
	"strings"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/gin-gonic/gin"
)

const bearerScheme = "Bearer"

// TokenVerifier resolves a raw bearer token to a subject id.
type TokenVerifier interface {
	Verify(raw string) (int64, error)
}

// Auth requires "Authorization: Bearer <token>" and attaches the caller's
// auth.Identity to the request context. Failures are passed to the Errors
// boundary as 401 domain errors.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, domain.ErrTokenMissing)
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		raw = strings.TrimSpace(raw)
		if !ok || scheme != bearerScheme || raw == "" {
			abort(c, domain.ErrUnauthenticated)
			return
		}

		id, err := tokens.Verify(raw)
		if err != nil {
			abort(c, domain.ErrUnauthenticated)
			return
		}

		ctx := auth.WithIdentity(c.Request.Context(), auth.Identity{ID: id})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
