// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-web/internal/i18n"
)

// I18nMiddleware picks the page language from the lang query parameter, then
// Accept-Language, then the configured default.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := resolveLanguage(c.Query("lang"), c.GetHeader("Accept-Language"))

		// Set language in context
		c.Set("lang", lang)
		c.Next()
	}
}

func resolveLanguage(queryLang, acceptLanguage string) string {
	if code := normalizeLanguage(queryLang); i18n.Supports(code) {
		return code
	}

	// Handle cases like "lt-LT,lt;q=0.9,en;q=0.8"
	for _, part := range strings.Split(acceptLanguage, ",") {
		code := normalizeLanguage(strings.Split(part, ";")[0])
		if i18n.Supports(code) {
			return code
		}
	}

	return i18n.DefaultLanguage()
}

func normalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}
