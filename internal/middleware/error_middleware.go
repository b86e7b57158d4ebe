package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

// HandleAPIError writes err as an {"error": "..."} body with the matching status
func HandleAPIError(c *gin.Context, err error) {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		c.JSON(apiErr.Status, dto.NewErrorBody(apiErr.Message))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorBody(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorBody(err.Error()))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorBody(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorBody("Internal server error"))
	}
}

// Recovery turns a panic into a 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorBody("Internal server error"))
	})
}
