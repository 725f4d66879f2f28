package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("login successful", gin.H{"token": token}))
}
