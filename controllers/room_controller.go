package controllers

import (
	"net/http"
	"strings"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	groups, err := rc.RoomSvc.ListAvailableGroupedByType()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, groups)
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number required")
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status required")
		return
	}

	room, err := rc.RoomSvc.UpdateStatus(number, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) GetAmenityStock(c *gin.Context) {
	stock, err := rc.RoomSvc.ListAmenityStock()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stock)
}

func (rc *RoomController) AllocateAmenity(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	ok, err := rc.RoomSvc.AllocateAmenity(name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusConflict, "amenity_unavailable")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "allocated")
}
