// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/luminadeco/boutique-backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Storefront responses are flat JSON objects: the success payload is the
// body itself and failures carry an "error" message (plus a "fields" list
// for validation failures). Error text is localized, French by default.

func Success(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, message string, fields []string) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid)
	}
	body := gin.H{"error": message}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	c.JSON(http.StatusBadRequest, body)
}

func Unauthorized(c *gin.Context) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(lang, i18n.KeyAuthRequired)})
}

func Forbidden(c *gin.Context) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusForbidden, gin.H{"error": i18n.T(lang, i18n.KeyAccessDenied)})
}

func NotFound(c *gin.Context, key string) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, key)})
}

// InternalError hides backend details from the client; the cause is
// logged server-side by the caller.
func InternalError(c *gin.Context) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, i18n.KeyInternalError)})
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLang
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok && userIDStr != "" {
			return userIDStr, true
		}
	}
	return "", false
}

func GetRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
