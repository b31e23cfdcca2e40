package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abhishekarun2901/tsl/db"
	"github.com/abhishekarun2901/tsl/model"
	"github.com/itbasis/go-clock"
)

// ErrInvalidArgument marks structurally invalid input. Handlers match it with
// errors.Is to map to a 400 response.
var ErrInvalidArgument = errors.New("invalid argument")

// C encapsulates business logic without worrying about any web layers
type C interface {
	// AddTeam creates a team and its zeroed standings row.
	AddTeam(ctx context.Context, t *model.Team) (*model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	// GetTeam returns the team along with its roster.
	GetTeam(ctx context.Context, id string) (*model.Team, []model.Player, error)

	AddPlayer(ctx context.Context, p *model.Player) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	// GetTopScorers lists players with at least one goal, most goals first.
	GetTopScorers(ctx context.Context) ([]model.Player, error)

	AddMatch(ctx context.Context, teamA, teamB string, matchTime time.Time, matchday int) (*model.Match, error)
	ListMatches(ctx context.Context) ([]model.Match, error)
	GetMatch(ctx context.Context, id string) (*model.Match, error)
	// UpdateMatchScore applies a partial score/status update. Nil fields keep
	// their stored values. When the match ends up finished, the standings are
	// recomputed before this returns.
	UpdateMatchScore(ctx context.Context, matchID string, scoreA, scoreB *int, status *model.MatchStatus) (*model.Match, error)

	// AddGoal records a goal event on the match and credits the scorer unless
	// the goal is an own goal or the scorer no longer exists.
	AddGoal(ctx context.Context, matchID, playerID, teamID string, minute int, ownGoal bool) (*model.Match, error)
	// RemoveGoal deletes the event at index and reverses the scorer's credit.
	RemoveGoal(ctx context.Context, matchID string, index int) (*model.Match, error)

	// RecalculateStandings rebuilds the standings table from every finished
	// match and returns the new table.
	RecalculateStandings(ctx context.Context) ([]model.Standing, error)
	GetStandings(ctx context.Context) ([]model.Standing, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB

	// Serializes full-table standings rebuilds so two near-simultaneous
	// finished transitions never interleave their delete/insert phases.
	recalcMu sync.Mutex
}

func New(clock clock.Clock, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}
