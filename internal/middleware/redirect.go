// internal/middleware/redirect.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emulatorgames/rom-catalog/internal/services"
)

// Redirects answers 301 for renamed paths before routing. The query string
// is carried over.
func Redirects(redirectService *services.RedirectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		target, ok := redirectService.Resolve(c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}

		if query := c.Request.URL.RawQuery; query != "" {
			target += "?" + query
		}
		c.Redirect(http.StatusMovedPermanently, target)
		c.Abort()
	}
}
