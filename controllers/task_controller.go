package controllers

import (
	"net/http"
	"strings"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskSvc *services.TaskService
}

func NewTaskController(svc *services.TaskService) *TaskController {
	return &TaskController{TaskSvc: svc}
}

func (tc *TaskController) RunCleaningCycle(c *gin.Context) {
	result, err := tc.TaskSvc.RunCleaningCycle()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func (tc *TaskController) CompleteCleaning(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	room, err := tc.TaskSvc.CompleteCleaning(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type serviceRequestPayload struct {
	RoomNumber  string `json:"roomNumber" binding:"required"`
	RequestType string `json:"requestType" binding:"required"`
}

func (tc *TaskController) CreateServiceRequest(c *gin.Context) {
	var payload serviceRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomNumber and requestType required")
		return
	}

	entry, err := tc.TaskSvc.LogServiceRequest(payload.RoomNumber, payload.RequestType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

func (tc *TaskController) GetLogs(c *gin.Context) {
	logs, err := tc.TaskSvc.Logs()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}
