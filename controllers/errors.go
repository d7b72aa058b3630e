package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscanteen/canteen-app/repository"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

var ErrNoPermission = &CustomError{"You do not have permission"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// respondServiceError maps the service error taxonomy onto HTTP codes.
func respondServiceError(c *gin.Context, err error) {
	var invalid *services.InvalidTransitionError
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrMissingTransitionParameter):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &invalid):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, repository.ErrStorageUnavailable):
		utils.RespondError(c, http.StatusServiceUnavailable, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
