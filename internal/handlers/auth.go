// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			lang := utils.GetLangFromContext(c)
			c.JSON(http.StatusConflict, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthEmailTaken),
			})
			return
		}
		handleServiceError(c, err, i18n.KeyValidationInvalid)
		return
	}

	utils.Created(c, gin.H{
		"user":         resp.User,
		"accessToken":  resp.AccessToken,
		"refreshToken": resp.RefreshToken,
		"tokenType":    resp.TokenType,
		"expiresIn":    resp.ExpiresIn,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			lang := utils.GetLangFromContext(c)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthInvalidCredentials),
			})
			return
		}
		handleServiceError(c, err, i18n.KeyValidationInvalid)
		return
	}

	utils.Success(c, gin.H{
		"user":         resp.User,
		"accessToken":  resp.AccessToken,
		"refreshToken": resp.RefreshToken,
		"tokenType":    resp.TokenType,
		"expiresIn":    resp.ExpiresIn,
	})
}

// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		utils.BadRequest(c, "", []string{"refreshToken"})
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(c, err, i18n.KeyValidationInvalid)
		return
	}

	utils.Success(c, gin.H{
		"accessToken":  resp.AccessToken,
		"refreshToken": resp.RefreshToken,
		"tokenType":    resp.TokenType,
		"expiresIn":    resp.ExpiresIn,
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyValidationInvalid)
		return
	}
	utils.Success(c, gin.H{"user": user})
}
