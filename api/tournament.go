// File: api/tournament.go
package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"miorai-web/models"
)

// CreateTournament creates a fresh empty tournament for the current user.
func (c *Client) CreateTournament(ctx context.Context, name, category string) (*models.Tournament, error) {
	body := map[string]string{"name": name, "category": category}
	var tournament models.Tournament
	if err := c.doJSON(ctx, http.MethodPost, "/api/tournaments/create/", body, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// GetTournament fetches the user's active tournament. A 404-class failure
// means no tournament exists yet; callers check with IsNotFound.
func (c *Client) GetTournament(ctx context.Context) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := c.doJSON(ctx, http.MethodGet, "/api/tournaments/detail/", nil, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// UpdateTournamentName renames the active tournament.
func (c *Client) UpdateTournamentName(ctx context.Context, name string) error {
	body := map[string]string{"name": name}
	return c.doJSON(ctx, http.MethodPatch, "/api/tournaments/detail/", body, nil)
}

// UpdateTournamentCategory changes the active tournament's category.
func (c *Client) UpdateTournamentCategory(ctx context.Context, category string) error {
	body := map[string]string{"category": category}
	return c.doJSON(ctx, http.MethodPatch, "/api/tournaments/detail/", body, nil)
}

// UploadImage adds a contestant image to the active tournament. The backend
// expects a multipart form with the file under "image" and its display name
// under "name".
func (c *Client) UploadImage(ctx context.Context, name, filename string, image io.Reader) error {
	form := func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("image", filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, image); err != nil {
			return err
		}
		return w.WriteField("name", name)
	}
	return c.doMultipart(ctx, http.MethodPost, "/api/tournaments/upload-image/", form, nil)
}

// DeleteImage removes an uploaded image. Only valid before the start.
func (c *Client) DeleteImage(ctx context.Context, imageID int) error {
	path := fmt.Sprintf("/api/tournaments/delete-image/%d/", imageID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// UpdateImageName renames an uploaded image. Only valid before the start.
func (c *Client) UpdateImageName(ctx context.Context, imageID int, name string) error {
	path := fmt.Sprintf("/api/tournaments/update-image-name/%d/", imageID)
	body := map[string]string{"name": name}
	return c.doJSON(ctx, http.MethodPatch, path, body, nil)
}

// StartTournament asks the backend to generate the bracket and returns the
// updated tournament.
func (c *Client) StartTournament(ctx context.Context) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := c.doJSON(ctx, http.MethodPost, "/api/tournaments/start/", nil, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// currentMatchResponse carries the flags the backend sets instead of a match
// when there is nothing left to play.
type currentMatchResponse struct {
	models.Match
	Completed bool `json:"completed"`
	NoMatch   bool `json:"no_match"`
}

// CurrentMatch fetches the single match waiting for a decision. It returns
// (nil, nil) when the backend reports the tournament completed or no match
// pending.
func (c *Client) CurrentMatch(ctx context.Context) (*models.Match, error) {
	var resp currentMatchResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/tournaments/current-match/", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Completed || resp.NoMatch {
		return nil, nil
	}
	match := resp.Match
	return &match, nil
}

// SubmitMatchResult records the winner of a match and returns the
// authoritative tournament state after scoring. The endpoint is rate
// limited; callers that want the bounded retry use the session flow.
func (c *Client) SubmitMatchResult(ctx context.Context, matchID, winnerID int) (*models.Tournament, error) {
	path := fmt.Sprintf("/api/tournaments/submit-result/%d/", matchID)
	body := map[string]int{"winner_id": winnerID}
	var tournament models.Tournament
	if err := c.doJSON(ctx, http.MethodPost, path, body, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// PublicTournaments lists tournaments published for replay.
func (c *Client) PublicTournaments(ctx context.Context) ([]models.PublicTournament, error) {
	var list []models.PublicTournament
	if err := c.doJSON(ctx, http.MethodGet, "/api/tournaments/public/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MakePublic publishes the completed tournament under the given name.
func (c *Client) MakePublic(ctx context.Context, name string) error {
	body := map[string]string{"name": name}
	return c.doJSON(ctx, http.MethodPost, "/api/tournaments/make-public/", body, nil)
}

// CreateFromPublic clones a published tournament's image set into a fresh
// tournament for the current user.
func (c *Client) CreateFromPublic(ctx context.Context, tournamentID int) (*models.Tournament, error) {
	path := fmt.Sprintf("/api/tournaments/create-from-public/%d/", tournamentID)
	var tournament models.Tournament
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// DeleteTournament discards the user's active tournament.
func (c *Client) DeleteTournament(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/tournaments/delete/", nil, nil)
}
