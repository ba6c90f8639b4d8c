package apperrors

import (
	"workhubb_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// Debug controls whether underlying error detail is exposed to clients.
// Set once at startup; never true in production.
var Debug = false

// HandleError writes an AppError to the gin response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error", "error", err.Error(), "path", c.Request.URL.Path)
	}

	out := err
	if Debug && err.Err != nil {
		out = err.WithDetails(gin.H{"cause": err.Err.Error()})
	}

	c.JSON(err.HTTPCode, ErrorResponse{Error: out})
}

// HandleValidationError converts a binding/validation failure into the
// standard 400 envelope.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}
