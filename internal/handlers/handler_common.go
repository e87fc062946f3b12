package handlers

import (
	"errors"
	"net/http"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain error categories onto HTTP status codes and writes
// the error body. Unknown errors become an opaque 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrLimitReached):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
