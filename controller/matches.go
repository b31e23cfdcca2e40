package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/abhishekarun2901/tsl/model"
)

func (c *controller) AddMatch(ctx context.Context, teamA, teamB string, matchTime time.Time, matchday int) (*model.Match, error) {
	if teamA == teamB {
		return nil, fmt.Errorf("%w: a match needs two distinct teams", ErrInvalidArgument)
	}
	if matchday < 0 {
		return nil, fmt.Errorf("%w: matchday must not be negative", ErrInvalidArgument)
	}

	// Both sides must resolve before the match is created. Goal-event
	// references are tolerant of deletions later on, match sides are not.
	if _, err := c.db.GetTeam(ctx, teamA); err != nil {
		return nil, err
	}
	if _, err := c.db.GetTeam(ctx, teamB); err != nil {
		return nil, err
	}

	m := &model.Match{
		TeamAID:   teamA,
		TeamBID:   teamB,
		Status:    model.StatusUpcoming,
		MatchTime: matchTime,
		Matchday:  matchday,
		Goals:     []model.GoalEvent{},
	}
	if err := c.db.AddMatch(ctx, m); err != nil {
		return nil, err
	}

	return c.db.GetMatch(ctx, m.ID)
}

func (c *controller) ListMatches(ctx context.Context) ([]model.Match, error) {
	return c.db.ListMatches(ctx)
}

func (c *controller) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	return c.db.GetMatch(ctx, id)
}

// UpdateMatchScore applies the provided fields and leaves the rest untouched.
// Any status value may be submitted at any time; corrections like finished to
// live are legal. The recompute fires whenever the match is finished after the
// update, whether or not this call changed the status.
func (c *controller) UpdateMatchScore(ctx context.Context, matchID string, scoreA, scoreB *int, status *model.MatchStatus) (*model.Match, error) {
	if scoreA != nil && *scoreA < 0 {
		return nil, fmt.Errorf("%w: scoreA must not be negative", ErrInvalidArgument)
	}
	if scoreB != nil && *scoreB < 0 {
		return nil, fmt.Errorf("%w: scoreB must not be negative", ErrInvalidArgument)
	}
	if status != nil {
		if *status != model.StatusUpcoming && *status != model.StatusLive && *status != model.StatusFinished {
			return nil, fmt.Errorf("%w: unknown match status '%s'", ErrInvalidArgument, *status)
		}
	}

	newStatus, err := c.db.UpdateMatchScore(ctx, matchID, scoreA, scoreB, status)
	if err != nil {
		return nil, err
	}

	if newStatus == model.StatusFinished {
		if _, err := c.RecalculateStandings(ctx); err != nil {
			return nil, fmt.Errorf("error recalculating standings after match %s finished: %w", matchID, err)
		}
	}

	return c.db.GetMatch(ctx, matchID)
}
