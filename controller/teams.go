package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhishekarun2901/tsl/model"
)

func (c *controller) AddTeam(ctx context.Context, t *model.Team) (*model.Team, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return nil, fmt.Errorf("%w: team name must be provided", ErrInvalidArgument)
	}
	t.Manager = strings.TrimSpace(t.Manager)
	if t.Manager == "" {
		return nil, fmt.Errorf("%w: team manager must be provided", ErrInvalidArgument)
	}
	t.Captain = strings.TrimSpace(t.Captain)
	if t.Captain == "" {
		return nil, fmt.Errorf("%w: team captain must be provided", ErrInvalidArgument)
	}
	if t.Pool != model.PoolA && t.Pool != model.PoolB {
		return nil, fmt.Errorf("%w: pool must be A or B", ErrInvalidArgument)
	}

	if err := c.db.AddTeam(ctx, t); err != nil {
		return nil, err
	}

	// Every team gets a standings row immediately so it appears in the table
	// before playing a match.
	if err := c.db.InitStanding(ctx, t.ID); err != nil {
		return nil, fmt.Errorf("error creating standings row for team %s: %w", t.ID, err)
	}

	return t, nil
}

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}

func (c *controller) GetTeam(ctx context.Context, id string) (*model.Team, []model.Player, error) {
	t, err := c.db.GetTeam(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	players, err := c.db.ListTeamPlayers(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing players for team %s: %w", id, err)
	}
	return t, players, nil
}
