// internal/middleware/i18n.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/emulatorgames/rom-catalog/internal/i18n"
)

// I18nMiddleware stores the best supported language for the request's
// Accept-Language header under "lang".
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", i18n.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}
