package api

import (
	"net/http"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles account endpoints
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.services.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user.Sanitized(),
		"token": token,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Sanitized(),
		"token": token,
	})
}

// GetUser handles GET /api/auth/user
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.services.Auth.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.services.Auth.UpdateProfile(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}
