package validation

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Timestamp time.Time    `json:"timestamp" swaggertype:"string" example:"2025-11-24T10:00:00Z"`
	Status    int          `json:"status" example:"404"`
	Error     string       `json:"error" example:"Not Found"`
	Message   string       `json:"message" example:"Book not found with id 1"`
	Errors    []FieldError `json:"errors,omitempty"`
}

func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	}
}

// BindJSON decodes the request body into dst. A body that is not valid JSON,
// or that carries a value of the wrong type, is answered with a 400.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp := NewErrorResponse(http.StatusBadRequest, "invalid request body")
		resp.Errors = []FieldError{syntaxError(err)}
		c.AbortWithStatusJSON(http.StatusBadRequest, resp)
		return false
	}

	return true
}

func syntaxError(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return FieldError{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: typeErr.Field + " must be " + typeErr.Type.String(),
		}
	}

	return FieldError{
		Field:   "",
		Rule:    "syntax",
		Message: err.Error(),
	}
}
