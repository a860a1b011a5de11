package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
	"github.com/rafisyahdn/go-dubbing-backend/internal/service"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	token, _, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "username or password is incorrect"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{Token: token})
}
