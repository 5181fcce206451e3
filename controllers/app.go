// Package controllers holds the gin handlers for every page and form action.
// File: controllers/app.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"miorai-web/api"
	"miorai-web/logger"
	"miorai-web/models"
	"miorai-web/services"
)

// Config is the application configuration handed to the controllers at
// startup. It is explicit constructor state, not package globals.
type Config struct {
	// ApplicationURL is this app's own public address, used for share links.
	ApplicationURL string
	// APIBaseURL is where the miorai backend lives.
	APIBaseURL string
	// Environment toggles debug logging ("production" silences it).
	Environment string
}

// App owns the shared backend client and configuration; all handlers are
// methods on it.
type App struct {
	Config Config
	base   *api.Client
}

// NewApp wires the controllers to the backend at cfg.APIBaseURL.
func NewApp(cfg Config) *App {
	return &App{Config: cfg, base: api.New(cfg.APIBaseURL)}
}

// ---------------------- session helpers ----------------------

// client returns a backend client authenticated as the current session's
// token holder (or anonymous when nobody is signed in).
func (a *App) client(c *gin.Context) *api.Client {
	session := sessions.Default(c)
	token, _ := session.Get("token").(string)
	return a.base.WithToken(token)
}

// flow builds the tournament session flow on top of the current session's
// client. The same client serves both the tournament and the prediction
// endpoints.
func (a *App) flow(c *gin.Context) *services.TournamentFlow {
	client := a.client(c)
	return services.NewTournamentFlow(client, client)
}

// forceLogout tears the local session down and sends the visitor to the
// login screen. Called whenever the backend stops accepting the token.
func (a *App) forceLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("forceLogout: saving cleared session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// setFlash records a one-shot error message for the next page render.
func setFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		logger.Error.Printf("setFlash: saving session: %v", err)
	}
}

// takeFlash pops the pending message, if any.
func takeFlash(c *gin.Context) string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	if err := session.Save(); err != nil {
		logger.Error.Printf("takeFlash: saving session: %v", err)
	}
	if message, ok := flashes[0].(string); ok {
		return message
	}
	return ""
}

// baseData assembles the template values every page shares: the active
// theme, the theme switcher options, and the signed-in identity when known.
func (a *App) baseData(c *gin.Context) gin.H {
	session := sessions.Default(c)
	themeName, _ := session.Get("theme").(string)
	data := gin.H{
		"Theme":      models.ThemeByName(themeName),
		"ThemeNames": models.ThemeNames(),
	}
	if email, ok := session.Get("userEmail").(string); ok && email != "" {
		data["UserEmail"] = email
	}
	if name, ok := session.Get("userName").(string); ok && name != "" {
		data["UserName"] = name
	}
	return data
}

// redirectWithError converts a failed action into either a forced logout
// (token rejected) or a flash message on the tournament screen.
func (a *App) redirectWithError(c *gin.Context, err error, fallback string) {
	if api.IsUnauthorized(err) {
		logger.Warn.Printf("redirectWithError: token rejected, clearing session: %v", err)
		a.forceLogout(c)
		return
	}
	setFlash(c, userMessage(err, fallback))
	c.Redirect(http.StatusFound, "/tournament")
}

// userMessage picks what the visitor sees: local validation errors verbatim,
// the server's own message when it sent one, otherwise the fallback.
func userMessage(err error, fallback string) string {
	if errors.Is(err, services.ErrNotEnoughImages) ||
		errors.Is(err, services.ErrEmptyImageName) ||
		errors.Is(err, services.ErrEmptyName) {
		return err.Error()
	}
	return api.Message(err, fallback)
}
