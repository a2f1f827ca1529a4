package handlers

import (
	"errors"
	"net/http"
	"strings"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// @Summary Login
// @Description Login as the operator
// @Accept json
// @Produce json
// @Param loginRequest body dtos.LoginRequest true "Login request"
// @Success 200 {object} dtos.Response
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	response, statusCode, err := h.authService.Login(c.Request.Context(), &req)
	respond(c, statusCode, response, err)
}

// @Summary Refresh Token
// @Description Exchange a refresh token for a new access token
// @Produce json
// @Param Authorization header string true "Bearer refresh token"
// @Success 200 {object} dtos.Response
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, ok := bearerToken(c)
	if !ok {
		respondBadRequest(c, errors.New("invalid authorization header"))
		return
	}

	response, statusCode, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	respond(c, statusCode, response, err)
}

// @Summary Logout
// @Description Revoke the refresh token and blacklist the access token
// @Accept json
// @Produce json
// @Param logoutRequest body dtos.LogoutRequest true "Logout request"
// @Success 200 {object} dtos.Response
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dtos.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	accessToken, ok := bearerToken(c)
	if !ok {
		respondBadRequest(c, errors.New("invalid authorization header"))
		return
	}

	statusCode, err := h.authService.Logout(c.Request.Context(), req.RefreshToken, accessToken)
	if err != nil {
		respond(c, statusCode, nil, err)
		return
	}
	respond(c, http.StatusOK, "Successfully logged out", nil)
}
