package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-identity/internal/api/shared/errors"
	"github.com/feral-file/ff-identity/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(details))
}

// respondError responds with the status of an executor APIError, or 500 for anything else
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode() >= http.StatusInternalServerError {
			logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		}
		c.JSON(apiErr.StatusCode(), apiErr)
		return
	}

	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}
