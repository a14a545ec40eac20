package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows cross-origin requests from the origins listed in
// CORS_ALLOWED_ORIGINS (comma separated). An empty list allows any origin.
func CORSMiddleware() gin.HandlerFunc {
	allowAll := true
	originsSet := make(map[string]struct{})
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		allowAll = false
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				originsSet[o] = struct{}{}
			}
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		_, listed := originsSet[origin]
		if allowAll {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if listed {
			c.Header("Access-Control-Allow-Origin", origin)
		}
		if allowAll || listed {
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
