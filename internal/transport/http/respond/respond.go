// Package respond turns errors into the API's JSON error envelope.
package respond

import (
	"errors"
	"net/http"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/validate"
	"github.com/gin-gonic/gin"
)

const (
	statusError = "error"

	msgValidation = "validation error"
	msgStorage    = "database error"
	msgInternal   = "internal server error"
)

// Kind is the class an error falls into at the response boundary.
type Kind int

const (
	KindDomain Kind = iota + 1
	KindValidation
	KindStorage
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Body is the error envelope written for every failed request.
type Body struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Errors  validate.Errors `json:"errors,omitempty"`
}

// Problem is a classified error ready to be written.
type Problem struct {
	Kind   Kind
	Status int
	Body   Body
}

// Classify maps err to exactly one Kind. Only the error's type is
// inspected, never its message.
func Classify(err error) Problem {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return Problem{
			Kind:   KindDomain,
			Status: appErr.StatusCode,
			Body:   Body{Status: statusError, Message: appErr.Message},
		}
	}

	var verrs validate.Errors
	if errors.As(err, &verrs) {
		return Problem{
			Kind:   KindValidation,
			Status: http.StatusBadRequest,
			Body:   Body{Status: statusError, Message: msgValidation, Errors: verrs},
		}
	}

	var storeErr *domain.StorageError
	if errors.As(err, &storeErr) {
		return Problem{
			Kind:   KindStorage,
			Status: http.StatusInternalServerError,
			Body:   Body{Status: statusError, Message: msgStorage},
		}
	}

	return Problem{
		Kind:   KindUnknown,
		Status: http.StatusInternalServerError,
		Body:   Body{Status: statusError, Message: msgInternal},
	}
}

// Error classifies err and writes it, aborting the chain.
func Error(c *gin.Context, err error) Problem {
	p := Classify(err)
	c.AbortWithStatusJSON(p.Status, p.Body)
	return p
}
