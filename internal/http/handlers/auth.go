package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /users/register
// body: { "name", "email", "password" }; any "role" field is ignored.
func (ah *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := ah.authService.Register(c.Request.Context(), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"user": user})
}

// POST /users/login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req services.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	token, user, err := ah.authService.Login(c.Request.Context(), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"token":      token,
		"expires_in": int(ah.authService.GetAccessTTL().Seconds()),
		"user":       user,
	})
}
