package controllers

import (
	"net/http"
	"strings"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

type registerGuestPayload struct {
	FullName   string `json:"fullName" binding:"required"`
	Age        int    `json:"age" binding:"required"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IDDocument string `json:"idDocument" binding:"required"`
}

func (gc *GuestController) RegisterGuest(c *gin.Context) {
	var payload registerGuestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	if strings.TrimSpace(payload.FullName) == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	guest, err := gc.GuestSvc.Register(services.RegisterGuestInput{
		FullName:   payload.FullName,
		Age:        payload.Age,
		Gender:     payload.Gender,
		Phone:      payload.Phone,
		Email:      payload.Email,
		IDDocument: payload.IDDocument,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.GuestSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (gc *GuestController) GetStatistics(c *gin.Context) {
	stats, err := gc.GuestSvc.Statistics()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
