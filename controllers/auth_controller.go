package controllers

import (
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	session, err := ac.AuthSvc.Login(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, session)
}

// Logout is a courtesy endpoint: sessions are stateless tokens, so there is
// nothing to clear server-side. The terminal discards its token.
func (ac *AuthController) Logout(c *gin.Context) {
	utils.JSONMessage(c, http.StatusOK, "logged out")
}
