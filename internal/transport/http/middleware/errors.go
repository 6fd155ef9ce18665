package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/recipes-api/internal/transport/http/respond"
	"github.com/gin-gonic/gin"
)

// Errors is the single place failed requests are turned into responses.
// Handlers and middleware record failures with c.Error; the last one wins.
func Errors(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "http_errors")
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		if c.Writer.Written() {
			logger.WarnContext(c.Request.Context(), "error after response was written", "error", last.Err)
			return
		}

		p := respond.Error(c, last.Err)
		logProblem(c, logger, p, last.Err)
	}
}

// Recovery converts panics into the internal server error envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "http_errors")
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		// %v, not %w: a panic always classifies as unknown
		err := fmt.Errorf("panic: %v", rec)
		p := respond.Error(c, err)
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", p.Status,
		)
	})
}

func logProblem(c *gin.Context, logger *slog.Logger, p respond.Problem, err error) {
	attrs := []any{
		"kind", p.Kind.String(),
		"status", p.Status,
		"method", c.Request.Method,
		"path", c.FullPath(),
	}
	if p.Status >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request.Context(), "request failed", append(attrs, "error", err)...)
		return
	}
	logger.DebugContext(c.Request.Context(), "request rejected", append(attrs, "error", err)...)
}
