// File: controllers/tournament_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"miorai-web/api"
	"miorai-web/logger"
	"miorai-web/models"
	"miorai-web/services"
)

// maxUploadBytes bounds a single image upload.
const maxUploadBytes = 10 << 20

// ------------------ tournament screen ------------------

// ShowTournament runs the initialization protocol and renders whichever step
// the backend says the tournament is in. A failed load leaves the screen in
// its loading-failed state with no tournament.
func (a *App) ShowTournament(c *gin.Context) {
	state, err := a.flow(c).Initialize(c.Request.Context(), models.DefaultCategory)
	if err != nil {
		if api.IsUnauthorized(err) {
			a.forceLogout(c)
			return
		}
		logger.Error.Printf("ShowTournament: initialization failed: %v", err)
		data := a.baseData(c)
		data["LoadError"] = api.Message(err, "The tournament could not be loaded.")
		c.HTML(http.StatusBadGateway, "tournament.html", data)
		return
	}
	a.renderTournament(c, state)
}

func (a *App) renderTournament(c *gin.Context, state *services.SessionState) {
	data := a.baseData(c)
	tournament := state.Tournament

	data["Step"] = int(state.Step)
	data["StepName"] = state.Step.String()
	data["Tournament"] = tournament
	data["Images"] = tournament.RealImages()
	data["ImageCount"] = tournament.RealImageCount()
	data["CanStart"] = tournament.RealImageCount() >= 2
	data["CurrentMatch"] = state.CurrentMatch
	data["Prediction"] = state.Prediction
	data["PlayedMatches"] = tournament.PlayedMatchCount()
	data["OfferPublish"] = state.OfferPublish
	data["CategoryColor"] = models.CategoryColor(tournament.Category)
	data["Categories"] = a.categories(c)
	if state.Step == services.StepCompleted {
		data["Ranking"] = tournament.Ranking()
	}
	if flash := takeFlash(c); flash != "" {
		data["Error"] = flash
	}
	c.HTML(http.StatusOK, "tournament.html", data)
}

// categories fetches the backend's category list, falling back to the local
// copy when the endpoint is unreachable.
func (a *App) categories(c *gin.Context) []models.Category {
	categories, err := a.client(c).Categories(c.Request.Context())
	if err != nil || len(categories) == 0 {
		logger.Debug.Printf("categories: using local fallback: %v", err)
		return models.DefaultCategories()
	}
	return categories
}

// ------------------ setup actions ------------------

// UploadImage receives one image file plus its display name.
func (a *App) UploadImage(c *gin.Context) {
	name := c.PostForm("name")
	file, err := c.FormFile("image")
	if err != nil {
		setFlash(c, "Please choose an image to upload.")
		c.Redirect(http.StatusFound, "/tournament")
		return
	}
	if file.Size > maxUploadBytes {
		setFlash(c, "Images can be at most 10 MB.")
		c.Redirect(http.StatusFound, "/tournament")
		return
	}
	if name == "" {
		name = file.Filename
	}

	src, err := file.Open()
	if err != nil {
		logger.Error.Printf("UploadImage: opening uploaded file: %v", err)
		setFlash(c, "The uploaded file could not be read.")
		c.Redirect(http.StatusFound, "/tournament")
		return
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn.Printf("UploadImage: closing uploaded file: %v", err)
		}
	}()

	if _, err := a.flow(c).UploadImage(c.Request.Context(), name, file.Filename, src); err != nil {
		a.redirectWithError(c, err, "The image could not be uploaded.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// DeleteImage removes an image before the tournament starts.
func (a *App) DeleteImage(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		setFlash(c, "Unknown image.")
		c.Redirect(http.StatusFound, "/tournament")
		return
	}
	if _, err := a.flow(c).DeleteImage(c.Request.Context(), imageID); err != nil {
		a.redirectWithError(c, err, "The image could not be deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// RenameImage changes an image's display name before the start.
func (a *App) RenameImage(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		setFlash(c, "Unknown image.")
		c.Redirect(http.StatusFound, "/tournament")
		return
	}
	if _, err := a.flow(c).RenameImage(c.Request.Context(), imageID, c.PostForm("name")); err != nil {
		a.redirectWithError(c, err, "The image could not be renamed.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// RenameTournament updates the tournament's own name.
func (a *App) RenameTournament(c *gin.Context) {
	if _, err := a.flow(c).RenameTournament(c.Request.Context(), c.PostForm("name")); err != nil {
		a.redirectWithError(c, err, "The tournament could not be renamed.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// ChangeCategory switches the tournament's category.
func (a *App) ChangeCategory(c *gin.Context) {
	if _, err := a.flow(c).ChangeCategory(c.Request.Context(), c.PostForm("category")); err != nil {
		a.redirectWithError(c, err, "The category could not be changed.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// StartTournament moves from setup into play.
func (a *App) StartTournament(c *gin.Context) {
	if _, err := a.flow(c).Start(c.Request.Context()); err != nil {
		a.redirectWithError(c, err, "The tournament could not be started.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// ------------------ play actions ------------------

// SubmitResult records the winner the user picked for the current match.
func (a *App) SubmitResult(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		setFlash(c, "Unknown match.")
		c.Redirect(http.StatusFound, "/tournament")
		return
	}
	winnerID, err := strconv.Atoi(c.PostForm("winner_id"))
	if err != nil {
		setFlash(c, "Please pick a winner.")
		c.Redirect(http.StatusFound, "/tournament")
		return
	}

	if _, err := a.flow(c).SubmitResult(c.Request.Context(), matchID, winnerID); err != nil {
		a.redirectWithError(c, err, "The match result could not be submitted.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// ------------------ completion actions ------------------

// PublishTournament shares the completed tournament under the chosen name.
func (a *App) PublishTournament(c *gin.Context) {
	if _, err := a.flow(c).MakePublic(c.Request.Context(), c.PostForm("name")); err != nil {
		a.redirectWithError(c, err, "The tournament could not be published.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// RestartTournament returns to setup with a fresh empty tournament.
func (a *App) RestartTournament(c *gin.Context) {
	if _, err := a.flow(c).Restart(c.Request.Context(), models.DefaultCategory); err != nil {
		a.redirectWithError(c, err, "A new tournament could not be created.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// DiscardTournament deletes the completed tournament instead of publishing
// it and starts over.
func (a *App) DiscardTournament(c *gin.Context) {
	if _, err := a.flow(c).DiscardAndRestart(c.Request.Context(), models.DefaultCategory); err != nil {
		a.redirectWithError(c, err, "The tournament could not be discarded.")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}
