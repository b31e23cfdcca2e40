package db

import (
	"context"

	"github.com/abhishekarun2901/tsl/model"
)

type DB interface {
	// AddTeam assigns the team an ID and persists it.
	AddTeam(ctx context.Context, t *model.Team) error
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	// ListTeams returns all teams sorted by name.
	ListTeams(ctx context.Context) ([]model.Team, error)

	AddPlayer(ctx context.Context, p *model.Player) error
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListTeamPlayers(ctx context.Context, teamID string) ([]model.Player, error)
	// ListTopScorers returns players with at least one goal, most goals first.
	ListTopScorers(ctx context.Context, limit int) ([]model.Player, error)

	AddMatch(ctx context.Context, m *model.Match) error
	GetMatch(ctx context.Context, id string) (*model.Match, error)
	// ListMatches returns all matches sorted by match time.
	ListMatches(ctx context.Context) ([]model.Match, error)
	ListMatchesByStatus(ctx context.Context, status model.MatchStatus) ([]model.Match, error)
	// UpdateMatchScore applies a partial update: nil fields keep their stored
	// value. It returns the match status after the update.
	UpdateMatchScore(ctx context.Context, id string, scoreA, scoreB *int, status *model.MatchStatus) (model.MatchStatus, error)
	// AddGoal appends the event to the match's goal list and, for a regular
	// goal, increments the scorer's tally. The whole read-modify-write runs
	// in one transaction holding a lock on the match row.
	AddGoal(ctx context.Context, matchID string, g model.GoalEvent) error
	// RemoveGoal removes the event at index, shifting later events down, and
	// for a regular goal decrements the scorer's tally, never below zero.
	RemoveGoal(ctx context.Context, matchID string, index int) error

	// GetStandings returns the table sorted by points, goal difference and
	// goals for, all descending.
	GetStandings(ctx context.Context) ([]model.Standing, error)
	// ReplaceStandings swaps the entire standings table for rows in a single
	// transaction. Readers never observe a partially rebuilt table.
	ReplaceStandings(ctx context.Context, rows []model.Standing) error
	// InitStanding creates the zeroed row for a newly created team.
	InitStanding(ctx context.Context, teamID string) error
}
