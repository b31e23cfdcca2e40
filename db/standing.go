package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhishekarun2901/tsl/model"
	"github.com/jackc/pgx/v5"
)

func (db *postgresDB) GetStandings(ctx context.Context) ([]model.Standing, error) {
	const query = `SELECT s.team_id, t.name, s.played, s.won, s.draw, s.lost,
						s.gf, s.ga, s.gd, s.points
					FROM standings s LEFT JOIN teams t ON t.id = s.team_id
					ORDER BY s.points DESC, s.gd DESC, s.gf DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying standings: %w", err)
	}
	defer rows.Close()

	results := make([]model.Standing, 0, 8)
	for rows.Next() {
		var s model.Standing
		var teamName sql.NullString
		err := rows.Scan(
			&s.TeamID,
			&teamName,
			&s.Played,
			&s.Won,
			&s.Draw,
			&s.Lost,
			&s.GoalsFor,
			&s.GoalsAgn,
			&s.GoalDiff,
			&s.Points)
		if err != nil {
			return nil, fmt.Errorf("error scanning standing: %w", err)
		}
		s.TeamName = valueOrEmpty(teamName)
		results = append(results, s)
	}
	return results, rows.Err()
}

// ReplaceStandings rebuilds the table inside one transaction so a reader sees
// either the old table or the new one, never a mix.
func (db *postgresDB) ReplaceStandings(ctx context.Context, standings []model.Standing) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM standings`); err != nil {
		return fmt.Errorf("error clearing standings: %w", err)
	}

	const insert = `INSERT INTO standings (team_id, played, won, draw, lost, gf, ga, gd, points)
					VALUES (@teamID, @played, @won, @draw, @lost, @gf, @ga, @gd, @points)`

	for _, s := range standings {
		args := pgx.NamedArgs{
			"teamID": s.TeamID,
			"played": s.Played,
			"won":    s.Won,
			"draw":   s.Draw,
			"lost":   s.Lost,
			"gf":     s.GoalsFor,
			"ga":     s.GoalsAgn,
			"gd":     s.GoalDiff,
			"points": s.Points,
		}
		if _, err := tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting standing for team %s: %w", s.TeamID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) InitStanding(ctx context.Context, teamID string) error {
	const query = `INSERT INTO standings (team_id) VALUES (@teamID)
					ON CONFLICT (team_id) DO NOTHING`

	if _, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"teamID": teamID}); err != nil {
		return fmt.Errorf("error initializing standing for team %s: %w", teamID, err)
	}
	return nil
}
