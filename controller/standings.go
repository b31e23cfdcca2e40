package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/abhishekarun2901/tsl/model"
)

// RecalculateStandings rebuilds the whole table from the finished-match set.
// Invocations are serialized: the table always reflects one point-in-time
// snapshot of the match set.
func (c *controller) RecalculateStandings(ctx context.Context) ([]model.Standing, error) {
	c.recalcMu.Lock()
	defer c.recalcMu.Unlock()

	start := c.clock.Now()

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading teams for standings: %w", err)
	}

	finished, err := c.db.ListMatchesByStatus(ctx, model.StatusFinished)
	if err != nil {
		return nil, fmt.Errorf("error loading finished matches: %w", err)
	}

	rows := computeStandings(teams, finished)
	if err := c.db.ReplaceStandings(ctx, rows); err != nil {
		return nil, fmt.Errorf("error replacing standings: %w", err)
	}

	log.Printf("recalculated standings for %d teams from %d finished matches in %v",
		len(teams), len(finished), c.clock.Now().Sub(start))

	return c.db.GetStandings(ctx)
}

func (c *controller) GetStandings(ctx context.Context) ([]model.Standing, error) {
	return c.db.GetStandings(ctx)
}

// computeStandings folds the finished matches into one aggregate row per
// team. The fold is commutative over the match set. Matches referencing a
// team missing from the roster are skipped entirely.
func computeStandings(teams []model.Team, finished []model.Match) []model.Standing {
	byTeam := make(map[string]*model.Standing, len(teams))
	order := make([]string, 0, len(teams))
	for _, t := range teams {
		byTeam[t.ID] = &model.Standing{TeamID: t.ID, TeamName: t.Name}
		order = append(order, t.ID)
	}

	for _, m := range finished {
		a, okA := byTeam[m.TeamAID]
		b, okB := byTeam[m.TeamBID]
		if !okA || !okB {
			continue
		}

		a.Played++
		b.Played++

		a.GoalsFor += m.ScoreA
		a.GoalsAgn += m.ScoreB
		b.GoalsFor += m.ScoreB
		b.GoalsAgn += m.ScoreA

		switch {
		case m.ScoreA > m.ScoreB:
			a.Won++
			a.Points += 3
			b.Lost++
		case m.ScoreB > m.ScoreA:
			b.Won++
			b.Points += 3
			a.Lost++
		default:
			a.Draw++
			b.Draw++
			a.Points++
			b.Points++
		}

		a.GoalDiff = a.GoalsFor - a.GoalsAgn
		b.GoalDiff = b.GoalsFor - b.GoalsAgn
	}

	rows := make([]model.Standing, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byTeam[id])
	}
	model.SortStandings(rows)
	return rows
}
