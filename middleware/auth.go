// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"miorai-web/logger"
)

// -------------- authentication middleware --------------

// AuthRequired ensures the visitor carries a backend token in their session.
// How it works:
// - Retrieves the session from the request context.
// - Checks if the "token" session variable is set and non-empty.
// - If not, redirects to "/login" and aborts execution.
// - Otherwise, the request proceeds. The token's actual validity is only
//   known to the backend; an unauthorized response later still tears the
//   session down.
// Usage:
//
//	protected := router.Group("/", middleware.AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	token, ok := session.Get("token").(string)

	if !ok || token == "" {
		logger.Warn.Printf("AuthRequired: no token in session for %s", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	logger.Debug.Println("[AuthRequired] Session token present - proceeding with request")
	c.Next()
}
