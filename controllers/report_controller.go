package controllers

import (
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportSvc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{ReportSvc: svc}
}

func (rc *ReportController) GetOccupancy(c *gin.Context) {
	report, err := rc.ReportSvc.Occupancy()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

func (rc *ReportController) GetRevenue(c *gin.Context) {
	report, err := rc.ReportSvc.Revenue()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}
