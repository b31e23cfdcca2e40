package mockdb

import (
	"context"

	"github.com/abhishekarun2901/tsl/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) AddTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) AddPlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) ListTeamPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	args := db.Called(ctx, teamID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) ListTopScorers(ctx context.Context, limit int) ([]model.Player, error) {
	args := db.Called(ctx, limit)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) AddMatch(ctx context.Context, m *model.Match) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	args := db.Called(ctx, id)

	var m *model.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) ListMatches(ctx context.Context) ([]model.Match, error) {
	args := db.Called(ctx)

	var r []model.Match
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Match)
	}
	return r, args.Error(1)
}

func (db *DB) ListMatchesByStatus(ctx context.Context, status model.MatchStatus) ([]model.Match, error) {
	args := db.Called(ctx, status)

	var r []model.Match
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Match)
	}
	return r, args.Error(1)
}

func (db *DB) UpdateMatchScore(ctx context.Context, id string, scoreA, scoreB *int, status *model.MatchStatus) (model.MatchStatus, error) {
	args := db.Called(ctx, id, scoreA, scoreB, status)
	return args.Get(0).(model.MatchStatus), args.Error(1)
}

func (db *DB) AddGoal(ctx context.Context, matchID string, g model.GoalEvent) error {
	args := db.Called(ctx, matchID, g)
	return args.Error(0)
}

func (db *DB) RemoveGoal(ctx context.Context, matchID string, index int) error {
	args := db.Called(ctx, matchID, index)
	return args.Error(0)
}

func (db *DB) GetStandings(ctx context.Context) ([]model.Standing, error) {
	args := db.Called(ctx)

	var r []model.Standing
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Standing)
	}
	return r, args.Error(1)
}

func (db *DB) ReplaceStandings(ctx context.Context, rows []model.Standing) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) InitStanding(ctx context.Context, teamID string) error {
	args := db.Called(ctx, teamID)
	return args.Error(0)
}
