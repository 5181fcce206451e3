// File: controllers/public_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"miorai-web/api"
	"miorai-web/logger"
	"miorai-web/services"
)

// ShowPublicTournaments lists tournaments other users have published.
func (a *App) ShowPublicTournaments(c *gin.Context) {
	data := a.baseData(c)
	tournaments, err := a.client(c).PublicTournaments(c.Request.Context())
	if err != nil {
		if api.IsUnauthorized(err) {
			a.forceLogout(c)
			return
		}
		logger.Error.Printf("ShowPublicTournaments: list failed: %v", err)
		data["Error"] = api.Message(err, "Public tournaments could not be loaded.")
		c.HTML(http.StatusBadGateway, "public_tournaments.html", data)
		return
	}
	data["Tournaments"] = tournaments
	c.HTML(http.StatusOK, "public_tournaments.html", data)
}

// PlayPublicTournament clones a published tournament for the current user
// and drops them into the resulting session.
func (a *App) PlayPublicTournament(c *gin.Context) {
	tournamentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		setFlash(c, "Unknown tournament.")
		c.Redirect(http.StatusFound, "/public")
		return
	}

	if _, err := a.flow(c).PlayPublic(c.Request.Context(), tournamentID); err != nil {
		if api.IsUnauthorized(err) {
			a.forceLogout(c)
			return
		}
		setFlash(c, api.Message(err, "This tournament could not be copied."))
		c.Redirect(http.StatusFound, "/public")
		return
	}
	c.Redirect(http.StatusFound, "/tournament")
}

// PublicQRCode renders a scannable link to one published tournament.
func (a *App) PublicQRCode(c *gin.Context) {
	tournamentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "unknown tournament")
		return
	}

	shareURL := fmt.Sprintf("%s/public/%d", a.Config.ApplicationURL, tournamentID)
	png, err := services.ShareQRCode(shareURL, 300, services.QRCodeEncoder(qrcode.Encode))
	if err != nil {
		logger.Error.Printf("PublicQRCode: encoding failed: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"qrcode.png\"")
	if _, err := c.Writer.Write(png); err != nil {
		logger.Error.Printf("PublicQRCode: writing response: %v", err)
	}
}
