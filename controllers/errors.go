package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Everything unexpected is a 500 with the raw message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateGuest),
		errors.Is(err, services.ErrNoRoomAvailable),
		errors.Is(err, services.ErrAlreadyCheckedOut),
		errors.Is(err, services.ErrStatusConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidSelection),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidRequest):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
