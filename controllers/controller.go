package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"school-store/models"
	"school-store/services"
)

// respondError maps service errors onto the HTTP taxonomy: 400 for bad
// input, 401/403 for auth, 404 for missing records, 500 otherwise. The
// body is always {"error": msg}.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrNoItems),
		errors.Is(err, services.ErrOrderIDTaken),
		errors.Is(err, services.ErrTotalMismatch),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrUnknownVariant):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
	}

	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}
