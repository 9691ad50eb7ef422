package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barakahq/supportbot/internal/pkg/errcode"
	"github.com/barakahq/supportbot/internal/pkg/response"
	"github.com/barakahq/supportbot/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.Error(c, errcode.ErrInvalid, "username and password required")
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}
