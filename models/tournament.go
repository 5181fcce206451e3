// Package models defines data structures used across the application.
// File: models/tournament.go
package models

import (
	"sort"
	"strings"
)

// PlaceholderPrefix marks the filler images the backend inserts to pad a
// bracket out to a power of two. Images with this name prefix must never
// appear in user-facing counts, readiness messages, or results.
const PlaceholderPrefix = "BOŞ_"

// ----------------------- image model -----------------------

// TournamentImage is one uploaded contestant in a tournament.
type TournamentImage struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	OriginalFilename string `json:"original_filename"`
	ImageURL         string `json:"image_url"`
	Points           int    `json:"points"`
	RoundsPlayed     int    `json:"rounds_played"`
	OrderIndex       int    `json:"order_index"`
}

// IsPlaceholder reports whether the image is a backend bracket filler.
func (i TournamentImage) IsPlaceholder() bool {
	return strings.HasPrefix(i.Name, PlaceholderPrefix)
}

// ----------------------- match model -----------------------

// Match is one pairwise comparison between two images within a round.
// Winner stays nil until the user decides the match.
type Match struct {
	ID          int              `json:"id"`
	Image1      TournamentImage  `json:"image1"`
	Image2      TournamentImage  `json:"image2"`
	Winner      *TournamentImage `json:"winner,omitempty"`
	RoundNumber int              `json:"round_number"`
	MatchIndex  int              `json:"match_index"`
	PlayedAt    string           `json:"played_at"` // timestamp string as sent by the backend
}

// --------------------- tournament model ---------------------

// Tournament is the client-side copy of the backend's tournament resource.
// It is always replaced wholesale by a fresh fetch, never patched locally.
type Tournament struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
	IsActive          bool              `json:"is_active"`
	IsCompleted       bool              `json:"is_completed"`
	IsFromPublic      bool              `json:"is_from_public"`
	CurrentRound      int               `json:"current_round"`
	CurrentMatchIndex int               `json:"current_match_index"`
	Images            []TournamentImage `json:"images"`
	Matches           []Match           `json:"matches"`
}

// RealImages returns the uploaded images with bracket fillers removed.
func (t *Tournament) RealImages() []TournamentImage {
	real := make([]TournamentImage, 0, len(t.Images))
	for _, img := range t.Images {
		if !img.IsPlaceholder() {
			real = append(real, img)
		}
	}
	return real
}

// RealImageCount counts the images a user actually uploaded.
func (t *Tournament) RealImageCount() int {
	return len(t.RealImages())
}

// HasMatches reports whether the backend has generated any matches yet,
// which is what separates a tournament in setup from one in play.
func (t *Tournament) HasMatches() bool {
	return len(t.Matches) > 0
}

// PlayedMatchCount counts matches that already have a winner.
func (t *Tournament) PlayedMatchCount() int {
	n := 0
	for _, m := range t.Matches {
		if m.Winner != nil {
			n++
		}
	}
	return n
}

// Ranking returns the final standing: placeholder images excluded, ordered by
// points descending with rounds played descending as the tiebreaker. The sort
// is stable, so images with equal keys keep their backend order.
func (t *Tournament) Ranking() []TournamentImage {
	ranked := t.RealImages()
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].RoundsPlayed > ranked[j].RoundsPlayed
	})
	return ranked
}

// ------------------ public tournament model ------------------

// PublicTournament is the read-only projection shown on the browse page.
type PublicTournament struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	UserName   string            `json:"user_name"`
	PlayCount  int               `json:"play_count"`
	CreatedAt  string            `json:"created_at"`
	Images     []TournamentImage `json:"images"`
	FirstImage *TournamentImage  `json:"first_image"`
}
