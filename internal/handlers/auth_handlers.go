package handlers

import (
	"errors"
	"net/http"
	"time"

	"gymdesk_backend/internal/middleware"
	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/services"
	"gymdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// demoAuthResponse synthesizes a session for the demo tenant so the
// login and signup screens work without a backend.
func demoAuthResponse() (*services.AuthResponse, error) {
	token, err := utils.GenerateSessionToken(models.DemoTenantID, "demo@gymdesk.local", "Demo Gym")
	if err != nil {
		return nil, err
	}
	return &services.AuthResponse{
		Gym: &models.Gym{
			ID:        models.DemoTenantID,
			Name:      "Demo Gym",
			Email:     "demo@gymdesk.local",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Token: token,
	}, nil
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if !middleware.BackendAvailable(c) {
		resp, err := demoAuthResponse()
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create session.", "Internal error"))
			return
		}
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"data": resp, "error": nil})
		return
	}

	resp, err := h.authService.Signup(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already registered.", err.Error()))
			return
		}
		utils.LogError(err, "Signup: failed to create gym account")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create account.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp, "error": nil})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if !middleware.BackendAvailable(c) {
		resp, err := demoAuthResponse()
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create session.", "Internal error"))
			return
		}
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"data": resp, "error": nil})
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password.", ""))
			return
		}
		utils.LogError(err, "Login: failed to authenticate")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to log in.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "error": nil})
}
