package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishekarun2901/tsl/db"
	"github.com/abhishekarun2901/tsl/model"
)

// The goal ledger: these two operations are the only writers of a match's
// goal list and of player goal tallies. Between calls, every player's tally
// equals the number of non-own-goal events crediting them.

func (c *controller) AddGoal(ctx context.Context, matchID, playerID, teamID string, minute int, ownGoal bool) (*model.Match, error) {
	if minute < 1 {
		return nil, fmt.Errorf("%w: minute must be positive", ErrInvalidArgument)
	}

	g := model.GoalEvent{
		PlayerID: playerID,
		TeamID:   teamID,
		Minute:   minute,
		OwnGoal:  ownGoal,
	}
	if err := c.db.AddGoal(ctx, matchID, g); err != nil {
		return nil, err
	}

	return c.db.GetMatch(ctx, matchID)
}

func (c *controller) RemoveGoal(ctx context.Context, matchID string, index int) (*model.Match, error) {
	if err := c.db.RemoveGoal(ctx, matchID, index); err != nil {
		if errors.Is(err, db.ErrGoalIndexOutOfRange) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return nil, err
	}

	return c.db.GetMatch(ctx, matchID)
}
