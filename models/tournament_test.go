// File: models/tournament_test.go
package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"miorai-web/models"
)

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, models.TournamentImage{Name: "BOŞ_0"}.IsPlaceholder())
	assert.True(t, models.TournamentImage{Name: "BOŞ_12"}.IsPlaceholder())
	assert.False(t, models.TournamentImage{Name: "sunset"}.IsPlaceholder())
	assert.False(t, models.TournamentImage{Name: ""}.IsPlaceholder())
}

func TestRealImagesExcludesPlaceholders(t *testing.T) {
	tournament := models.Tournament{
		Images: []models.TournamentImage{
			{ID: 1, Name: "cat"},
			{ID: 2, Name: "BOŞ_0"},
			{ID: 3, Name: "dog"},
			{ID: 4, Name: "BOŞ_1"},
		},
	}

	real := tournament.RealImages()
	assert.Len(t, real, 2)
	assert.Equal(t, 2, tournament.RealImageCount())
	assert.Equal(t, "cat", real[0].Name)
	assert.Equal(t, "dog", real[1].Name)
}

// Ranking must order by points descending, then rounds played descending.
func TestRankingOrder(t *testing.T) {
	tournament := models.Tournament{
		Images: []models.TournamentImage{
			{ID: 1, Name: "A", Points: 3, RoundsPlayed: 2},
			{ID: 2, Name: "B", Points: 3, RoundsPlayed: 3},
			{ID: 3, Name: "C", Points: 5, RoundsPlayed: 1},
		},
	}

	ranked := tournament.Ranking()
	assert.Equal(t, []string{"C", "B", "A"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
}

func TestRankingIsStableForEqualKeys(t *testing.T) {
	tournament := models.Tournament{
		Images: []models.TournamentImage{
			{ID: 1, Name: "first", Points: 2, RoundsPlayed: 2},
			{ID: 2, Name: "second", Points: 2, RoundsPlayed: 2},
			{ID: 3, Name: "third", Points: 2, RoundsPlayed: 2},
		},
	}

	ranked := tournament.Ranking()
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestRankingExcludesPlaceholders(t *testing.T) {
	tournament := models.Tournament{
		Images: []models.TournamentImage{
			{ID: 1, Name: "BOŞ_0", Points: 99, RoundsPlayed: 9},
			{ID: 2, Name: "real", Points: 1, RoundsPlayed: 1},
		},
	}

	ranked := tournament.Ranking()
	assert.Len(t, ranked, 1)
	assert.Equal(t, "real", ranked[0].Name)
}

func TestPlayedMatchCount(t *testing.T) {
	winner := models.TournamentImage{ID: 1, Name: "w"}
	tournament := models.Tournament{
		Matches: []models.Match{
			{ID: 1, Winner: &winner},
			{ID: 2},
			{ID: 3, Winner: &winner},
		},
	}
	assert.Equal(t, 2, tournament.PlayedMatchCount())
	assert.True(t, tournament.HasMatches())
}

func TestPredictionFormat(t *testing.T) {
	p := models.MatchPrediction{
		EstimatedMatches:   11.6,
		ConfidenceInterval: [2]float64{9.4, 13.2},
	}
	assert.Equal(t, "12~9-14", p.Format())
}

func TestThemeByNameFallsBack(t *testing.T) {
	assert.Equal(t, "nightPetrol", models.ThemeByName("").Name)
	assert.Equal(t, "nightPetrol", models.ThemeByName("no-such-theme").Name)
	assert.Equal(t, "blackCobalt", models.ThemeByName("blackCobalt").Name)
}

func TestCategoryColorFallsBack(t *testing.T) {
	assert.Equal(t, "#4CAF50", models.CategoryColor("nature"))
	assert.Equal(t, "#757575", models.CategoryColor("unknown"))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", models.User{FirstName: "Ada", LastName: "Lovelace"}.DisplayName())
	assert.Equal(t, "Ada", models.User{FirstName: "Ada"}.DisplayName())
	assert.Equal(t, "a@example.com", models.User{Email: "a@example.com"}.DisplayName())
}
