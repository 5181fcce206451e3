// File: services/tournament_flow.go
package services

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
	"miorai-web/api"
	"miorai-web/logger"
	"miorai-web/models"
)

// DefaultTournamentName is given to tournaments created implicitly, before
// the user renames them.
const DefaultTournamentName = "Image Tournament"

// maxSubmitRetries bounds the transparent retry on rate-limited result
// submissions. Only that endpoint is throttled by the backend.
const maxSubmitRetries = 2

// Step is the lifecycle stage the tournament screen is in.
type Step int

const (
	StepSetup Step = iota
	StepPlaying
	StepCompleted
)

func (s Step) String() string {
	switch s {
	case StepPlaying:
		return "playing"
	case StepCompleted:
		return "completed"
	default:
		return "setup"
	}
}

// ---------------------- backend interfaces ----------------------

// TournamentAPI is the slice of the backend client the flow drives.
type TournamentAPI interface {
	CreateTournament(ctx context.Context, name, category string) (*models.Tournament, error)
	GetTournament(ctx context.Context) (*models.Tournament, error)
	UpdateTournamentName(ctx context.Context, name string) error
	UpdateTournamentCategory(ctx context.Context, category string) error
	UploadImage(ctx context.Context, name, filename string, image io.Reader) error
	DeleteImage(ctx context.Context, imageID int) error
	UpdateImageName(ctx context.Context, imageID int, name string) error
	StartTournament(ctx context.Context) (*models.Tournament, error)
	CurrentMatch(ctx context.Context) (*models.Match, error)
	SubmitMatchResult(ctx context.Context, matchID, winnerID int) (*models.Tournament, error)
	MakePublic(ctx context.Context, name string) error
	CreateFromPublic(ctx context.Context, tournamentID int) (*models.Tournament, error)
	DeleteTournament(ctx context.Context) error
}

// PredictionAPI is the estimation endpoint, kept separate because its
// failures are advisory and never block the flow.
type PredictionAPI interface {
	PredictMatches(ctx context.Context, nImages int) (*models.MatchPrediction, error)
}

// ---------------------- session state ----------------------

// SessionState is everything the tournament screen needs to render. It is
// rebuilt from the backend's authoritative data after every action; the flow
// never patches a previous state locally.
type SessionState struct {
	Step         Step
	Tournament   *models.Tournament
	CurrentMatch *models.Match
	Prediction   string // formatted estimate, empty when unavailable
	OfferPublish bool   // completed and eligible for the one-time publish prompt
}

// ---------------------- tournament flow ----------------------

// TournamentFlow owns the setup → playing → completed lifecycle and keeps it
// synchronized with the backend after every mutation.
type TournamentFlow struct {
	api       TournamentAPI
	predictor PredictionAPI
}

// NewTournamentFlow wires the flow to its backend collaborators.
func NewTournamentFlow(tournamentAPI TournamentAPI, predictor PredictionAPI) *TournamentFlow {
	return &TournamentFlow{api: tournamentAPI, predictor: predictor}
}

// Initialize runs the once-per-visit protocol: fetch the existing
// tournament and classify it into a step, or create a fresh one when none
// exists yet. Any other failure is surfaced as a load error.
func (f *TournamentFlow) Initialize(ctx context.Context, category string) (*SessionState, error) {
	tournament, err := f.api.GetTournament(ctx)
	if err != nil {
		if !api.IsNotFound(err) {
			return nil, err
		}
		logger.Info.Println("[flow] no active tournament, creating a new one")
		tournament, err = f.api.CreateTournament(ctx, DefaultTournamentName, category)
		if err != nil {
			return nil, err
		}
		return &SessionState{Step: StepSetup, Tournament: tournament}, nil
	}
	return f.stateFor(ctx, tournament)
}

// stateFor classifies a fresh tournament copy into a step and gathers the
// per-step extras. In play, the current match and the advisory prediction
// are fetched together.
func (f *TournamentFlow) stateFor(ctx context.Context, tournament *models.Tournament) (*SessionState, error) {
	state := &SessionState{Tournament: tournament}
	switch {
	case tournament.IsCompleted:
		state.Step = StepCompleted
		state.OfferPublish = !tournament.IsFromPublic
	case tournament.HasMatches():
		state.Step = StepPlaying
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			match, err := f.api.CurrentMatch(groupCtx)
			if err != nil {
				return err
			}
			state.CurrentMatch = match
			return nil
		})
		group.Go(func() error {
			state.Prediction = f.predict(groupCtx, tournament)
			return nil
		})
		if err := group.Wait(); err != nil {
			return nil, err
		}
	default:
		state.Step = StepSetup
	}
	return state, nil
}

// predict asks the estimation service for the remaining-match figure.
// Failures are logged and swallowed: the screen simply shows no estimate.
func (f *TournamentFlow) predict(ctx context.Context, tournament *models.Tournament) string {
	count := tournament.RealImageCount()
	if count < 2 {
		return ""
	}
	prediction, err := f.predictor.PredictMatches(ctx, count)
	if err != nil {
		logger.Warn.Printf("[flow] match prediction unavailable: %v", err)
		return ""
	}
	return prediction.Format()
}

// reconcile is the mutate-then-reconcile helper every action funnels
// through: run the remote call, discard any local guess, refetch the
// authoritative tournament, and rebuild the view state from it.
func (f *TournamentFlow) reconcile(ctx context.Context, action func(context.Context) error) (*SessionState, error) {
	if err := action(ctx); err != nil {
		return nil, err
	}
	tournament, err := f.api.GetTournament(ctx)
	if err != nil {
		return nil, err
	}
	return f.stateFor(ctx, tournament)
}

// ---------------------- setup actions ----------------------

// UploadImage adds a contestant during setup.
func (f *TournamentFlow) UploadImage(ctx context.Context, name, filename string, image io.Reader) (*SessionState, error) {
	if name == "" {
		return nil, ErrEmptyImageName
	}
	return f.reconcile(ctx, func(ctx context.Context) error {
		return f.api.UploadImage(ctx, name, filename, image)
	})
}

// DeleteImage removes a contestant during setup.
func (f *TournamentFlow) DeleteImage(ctx context.Context, imageID int) (*SessionState, error) {
	return f.reconcile(ctx, func(ctx context.Context) error {
		return f.api.DeleteImage(ctx, imageID)
	})
}

// RenameImage changes a contestant's display name during setup.
func (f *TournamentFlow) RenameImage(ctx context.Context, imageID int, name string) (*SessionState, error) {
	if name == "" {
		return nil, ErrEmptyImageName
	}
	return f.reconcile(ctx, func(ctx context.Context) error {
		return f.api.UpdateImageName(ctx, imageID, name)
	})
}

// RenameTournament changes the tournament's own name.
func (f *TournamentFlow) RenameTournament(ctx context.Context, name string) (*SessionState, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return f.reconcile(ctx, func(ctx context.Context) error {
		return f.api.UpdateTournamentName(ctx, name)
	})
}

// ChangeCategory switches the tournament's category.
func (f *TournamentFlow) ChangeCategory(ctx context.Context, category string) (*SessionState, error) {
	return f.reconcile(ctx, func(ctx context.Context) error {
		return f.api.UpdateTournamentCategory(ctx, category)
	})
}

// Start moves from setup into play. The image minimum is checked locally
// first so an under-filled tournament never produces a start request.
func (f *TournamentFlow) Start(ctx context.Context) (*SessionState, error) {
	tournament, err := f.api.GetTournament(ctx)
	if err != nil {
		return nil, err
	}
	if tournament.RealImageCount() < 2 {
		return nil, ErrNotEnoughImages
	}
	return f.reconcile(ctx, func(ctx context.Context) error {
		_, err := f.api.StartTournament(ctx)
		return err
	})
}

// ---------------------- play actions ----------------------

// SubmitResult records the winner of the current match. The returned
// tournament is the server's post-scoring representation: when it reports
// completion the match view is cleared, otherwise the next match is fetched
// before the state settles.
func (f *TournamentFlow) SubmitResult(ctx context.Context, matchID, winnerID int) (*SessionState, error) {
	tournament, err := f.submitWithRetry(ctx, matchID, winnerID)
	if err != nil {
		return nil, err
	}
	if tournament.IsCompleted {
		return &SessionState{
			Step:         StepCompleted,
			Tournament:   tournament,
			OfferPublish: !tournament.IsFromPublic,
		}, nil
	}
	state := &SessionState{Step: StepPlaying, Tournament: tournament}
	match, err := f.api.CurrentMatch(ctx)
	if err != nil {
		return nil, err
	}
	state.CurrentMatch = match
	state.Prediction = f.predict(ctx, tournament)
	return state, nil
}

// submitWithRetry retries a throttled submission at most maxSubmitRetries
// times, waiting the server-indicated delay between attempts. Any other
// failure, or an exhausted budget, is returned as-is.
func (f *TournamentFlow) submitWithRetry(ctx context.Context, matchID, winnerID int) (*models.Tournament, error) {
	for attempt := 0; ; attempt++ {
		tournament, err := f.api.SubmitMatchResult(ctx, matchID, winnerID)
		if err == nil {
			return tournament, nil
		}
		if !api.IsRateLimited(err) || attempt == maxSubmitRetries {
			return nil, err
		}

		delay := api.DefaultRetryAfter
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
			delay = apiErr.RetryAfter
		}
		logger.Warn.Printf("[flow] result submission throttled, retrying in %v (attempt %d/%d)", delay, attempt+1, maxSubmitRetries)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// ---------------------- completion actions ----------------------

// MakePublic publishes the completed tournament under the given name.
func (f *TournamentFlow) MakePublic(ctx context.Context, name string) (*SessionState, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return f.reconcile(ctx, func(ctx context.Context) error {
		return f.api.MakePublic(ctx, name)
	})
}

// Restart unconditionally returns to setup by creating a fresh empty
// tournament; the backend replaces the old one.
func (f *TournamentFlow) Restart(ctx context.Context, category string) (*SessionState, error) {
	tournament, err := f.api.CreateTournament(ctx, DefaultTournamentName, category)
	if err != nil {
		return nil, err
	}
	return &SessionState{Step: StepSetup, Tournament: tournament}, nil
}

// DiscardAndRestart deletes the completed tournament instead of publishing
// it, then starts over with a fresh one.
func (f *TournamentFlow) DiscardAndRestart(ctx context.Context, category string) (*SessionState, error) {
	if err := f.api.DeleteTournament(ctx); err != nil {
		return nil, err
	}
	return f.Restart(ctx, category)
}

// PlayPublic clones a published tournament's image set and enters the
// resulting session.
func (f *TournamentFlow) PlayPublic(ctx context.Context, tournamentID int) (*SessionState, error) {
	return f.reconcile(ctx, func(ctx context.Context) error {
		_, err := f.api.CreateFromPublic(ctx, tournamentID)
		return err
	})
}
