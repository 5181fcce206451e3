// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"miorai-web/logger"
	"miorai-web/models"
)

// BackendStatus is implemented by the heartbeat monitor in main; the health
// handler only needs the reachability answer.
type BackendStatus interface {
	Reachable() bool
}

// Health reports this app plus the backend's last known reachability.
func (a *App) Health(monitor BackendStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		backend := "unreachable"
		if monitor == nil || monitor.Reachable() {
			backend = "ok"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backend})
	}
}

// Home renders the landing page.
func (a *App) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", a.baseData(c))
}

// About renders the about page.
func (a *App) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", a.baseData(c))
}

// Contact renders the contact page.
func (a *App) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", a.baseData(c))
}

// SetTheme persists the visitor's palette choice in the session. Unknown
// names fall back to the default palette on render, so no validation error
// is needed here.
func (a *App) SetTheme(c *gin.Context) {
	name := c.PostForm("theme")
	session := sessions.Default(c)
	session.Set("theme", models.ThemeByName(name).Name)
	if err := session.Save(); err != nil {
		logger.Error.Printf("SetTheme: saving session: %v", err)
	}

	target := c.GetHeader("Referer")
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}
