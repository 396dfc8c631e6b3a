package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

type checkInPayload struct {
	Name       string `json:"name" binding:"required"`
	IDDocument string `json:"idDocument" binding:"required"`
	RoomType   string `json:"roomType"`
	RoomNumber string `json:"roomNumber"`
}

func (rc *ReservationController) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	reservation, err := rc.ReservationSvc.CheckIn(services.CheckInInput{
		Name:       payload.Name,
		IDDocument: payload.IDDocument,
		TypeName:   payload.RoomType,
		RoomNumber: payload.RoomNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"reservationId": reservation.ReferenceID,
		"roomNumber":    reservation.RoomNumber,
		"checkInAt":     reservation.CheckInAt,
		"guest":         reservation.Guest.FullName,
	})
}

func (rc *ReservationController) CheckOut(c *gin.Context) {
	ref := c.Param("ref")

	reservation, invoice, err := rc.ReservationSvc.CheckOut(ref)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyCheckedOut) && reservation != nil {
			c.JSON(http.StatusConflict, gin.H{
				"success":    false,
				"error":      err.Error(),
				"checkOutAt": reservation.CheckOutAt,
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"guest":   reservation.Guest.FullName,
		"invoice": invoice,
	})
}

func (rc *ReservationController) GetActive(c *gin.Context) {
	reservations, err := rc.ReservationSvc.ListActive()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}
