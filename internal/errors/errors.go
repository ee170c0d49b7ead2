package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the JSON error envelope returned to clients.
type APIError struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

// NewAPIErrorWithDetails creates a new APIError carrying field-level details
func NewAPIErrorWithDetails(message string, errs interface{}) *APIError {
	return &APIError{Message: message, Errors: errs}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(message))
}

// BadRequestWithDetails sends a 400 response with field details
func BadRequestWithDetails(c *gin.Context, message string, errs interface{}) {
	RespondWithError(c, http.StatusBadRequest, NewAPIErrorWithDetails(message, errs))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(message))
}

// InternalError sends a 500 response. Outside development mode the detail is
// replaced by a generic message so internals never reach clients.
func InternalError(c *gin.Context, message string) {
	if message == "" || gin.Mode() == gin.ReleaseMode {
		message = "Internal Server Error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(message))
}
