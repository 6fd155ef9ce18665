package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Security sets common HTTP security headers on every response. The
// Swagger UI needs inline scripts, so its pages skip the frame and HSTS
// headers only.
func Security(docsPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		if docsPrefix == "" || !strings.HasPrefix(c.Request.URL.Path, docsPrefix) {
			c.Header("X-Frame-Options", "DENY")
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
