// File: services/mock_tournament_api.go
package services

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"miorai-web/models"
)

// MockTournamentAPI implements TournamentAPI for testing.
type MockTournamentAPI struct {
	mock.Mock
}

func (m *MockTournamentAPI) CreateTournament(ctx context.Context, name, category string) (*models.Tournament, error) {
	args := m.Called(ctx, name, category)
	if t := args.Get(0); t != nil {
		return t.(*models.Tournament), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTournamentAPI) GetTournament(ctx context.Context) (*models.Tournament, error) {
	args := m.Called(ctx)
	if t := args.Get(0); t != nil {
		return t.(*models.Tournament), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTournamentAPI) UpdateTournamentName(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockTournamentAPI) UpdateTournamentCategory(ctx context.Context, category string) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockTournamentAPI) UploadImage(ctx context.Context, name, filename string, image io.Reader) error {
	return m.Called(ctx, name, filename, image).Error(0)
}

func (m *MockTournamentAPI) DeleteImage(ctx context.Context, imageID int) error {
	return m.Called(ctx, imageID).Error(0)
}

func (m *MockTournamentAPI) UpdateImageName(ctx context.Context, imageID int, name string) error {
	return m.Called(ctx, imageID, name).Error(0)
}

func (m *MockTournamentAPI) StartTournament(ctx context.Context) (*models.Tournament, error) {
	args := m.Called(ctx)
	if t := args.Get(0); t != nil {
		return t.(*models.Tournament), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTournamentAPI) CurrentMatch(ctx context.Context) (*models.Match, error) {
	args := m.Called(ctx)
	if match := args.Get(0); match != nil {
		return match.(*models.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTournamentAPI) SubmitMatchResult(ctx context.Context, matchID, winnerID int) (*models.Tournament, error) {
	args := m.Called(ctx, matchID, winnerID)
	if t := args.Get(0); t != nil {
		return t.(*models.Tournament), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTournamentAPI) MakePublic(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockTournamentAPI) CreateFromPublic(ctx context.Context, tournamentID int) (*models.Tournament, error) {
	args := m.Called(ctx, tournamentID)
	if t := args.Get(0); t != nil {
		return t.(*models.Tournament), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTournamentAPI) DeleteTournament(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockPredictionAPI implements PredictionAPI for testing.
type MockPredictionAPI struct {
	mock.Mock
}

func (m *MockPredictionAPI) PredictMatches(ctx context.Context, nImages int) (*models.MatchPrediction, error) {
	args := m.Called(ctx, nImages)
	if p := args.Get(0); p != nil {
		return p.(*models.MatchPrediction), args.Error(1)
	}
	return nil, args.Error(1)
}
