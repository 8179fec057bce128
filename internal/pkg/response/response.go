// internal/pkg/response/response.go
package response

import (
	"net/http"

	xerrors "fieldserve/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response and aborts the chain.
func Error(c *gin.Context, code int, message string) {
	c.Abort()
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

// DomainError maps a typed domain error to its HTTP status and error body.
// Internal detail never reaches the client; unexpected errors collapse to 500.
func DomainError(c *gin.Context, err error) {
	if v, ok := xerrors.AsValidation(err); ok {
		c.Abort()
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "validation failed",
			Fields:  v.Fields,
		})
		return
	}

	switch {
	case xerrors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, "resource not found")
	case xerrors.Is(err, xerrors.ErrUnauthorized), xerrors.Is(err, xerrors.ErrSessionExpired):
		Error(c, http.StatusUnauthorized, "authentication required")
	case xerrors.Is(err, xerrors.ErrForbidden):
		Error(c, http.StatusForbidden, "no tenant access")
	case xerrors.Is(err, xerrors.ErrConflict):
		Error(c, http.StatusConflict, "resource already exists")
	case xerrors.Is(err, xerrors.ErrInvalidInput), xerrors.Is(err, xerrors.ErrBadRequest):
		Error(c, http.StatusBadRequest, "invalid request")
	default:
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
