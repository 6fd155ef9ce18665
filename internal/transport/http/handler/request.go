package handler

import (
	"strconv"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/validate"
	"github.com/gin-gonic/gin"
)

// decodeBody reads the request body into schema T. On failure the error is
// recorded on c for the Errors middleware and ok is false.
func decodeBody[T any](c *gin.Context) (T, bool) {
	var zero T
	body, err := c.GetRawData()
	if err != nil {
		_ = c.Error(err)
		return zero, false
	}
	req, err := validate.Decode[T](body)
	if err != nil {
		_ = c.Error(err)
		return zero, false
	}
	return req, true
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	// Only base-10 int64 is accepted: "1.5", "0x10" and out-of-range ids are
	// 400. Zero and negatives parse and end up as 404 from the lookup.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.Error(domain.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// callerID returns the id the auth middleware attached to the request.
func callerID(c *gin.Context) (int64, bool) {
	ident, ok := auth.IdentityFromContext(c.Request.Context())
	if !ok {
		_ = c.Error(domain.ErrNoIdentity)
		return 0, false
	}
	return ident.ID, true
}
