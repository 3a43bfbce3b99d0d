// internal/middleware/locale.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
)

// Locale resolves the response language from Accept-Language. The shop
// serves a French audience, so anything unrecognized falls back to
// French rather than English.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")

		if lang != "" {
			// Handle cases like "fr-FR,fr;q=0.9,en;q=0.8"
			langs := strings.Split(lang, ",")
			if len(langs) > 0 {
				first := strings.TrimSpace(strings.Split(langs[0], ";")[0])
				switch {
				case strings.HasPrefix(first, "fr"):
					lang = "fr"
				case strings.HasPrefix(first, "en"):
					lang = "en"
				default:
					lang = i18n.DefaultLang
				}
			}
		} else {
			lang = i18n.DefaultLang
		}

		c.Set("lang", lang)
		c.Next()
	}
}
