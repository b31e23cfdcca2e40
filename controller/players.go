package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhishekarun2901/tsl/model"
)

// topScorersLimit caps the scorer leaderboard.
const topScorersLimit = 20

func (c *controller) AddPlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, fmt.Errorf("%w: player name must be provided", ErrInvalidArgument)
	}
	if p.Jersey < 0 {
		return nil, fmt.Errorf("%w: jersey number must not be negative", ErrInvalidArgument)
	}

	// The owning team is assigned at creation and must exist.
	team, err := c.db.GetTeam(ctx, p.TeamID)
	if err != nil {
		return nil, err
	}

	p.Goals = 0
	if err := c.db.AddPlayer(ctx, p); err != nil {
		return nil, err
	}
	p.TeamName = team.Name
	return p, nil
}

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) GetTopScorers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListTopScorers(ctx, topScorersLimit)
}
