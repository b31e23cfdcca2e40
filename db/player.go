package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhishekarun2901/tsl/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) AddPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (name, team_id, position, jersey_num, goals, created)
					VALUES (@name, @teamID, @position, @jersey, @goals, @created)
					RETURNING id`

	var jersey *int
	if p.Jersey != 0 {
		jersey = &p.Jersey
	}

	args := pgx.NamedArgs{
		"name":     p.Name,
		"teamID":   p.TeamID,
		"position": string(p.Position),
		"jersey":   jersey,
		"goals":    p.Goals,
		"created":  db.clock.Now().UTC(),
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&p.ID); err != nil {
		return fmt.Errorf("error inserting player: %w", err)
	}
	return nil
}

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT p.id, p.name, p.team_id, t.name, p.position, p.jersey_num,
						p.goals, p.created, p.updated
					FROM players p LEFT JOIN teams t ON t.id = p.team_id
					WHERE p.id::text=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT p.id, p.name, p.team_id, t.name, p.position, p.jersey_num,
						p.goals, p.created, p.updated
					FROM players p LEFT JOIN teams t ON t.id = p.team_id
					ORDER BY p.name`

	return db.queryPlayers(ctx, query, nil)
}

func (db *postgresDB) ListTeamPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	const query = `SELECT p.id, p.name, p.team_id, t.name, p.position, p.jersey_num,
						p.goals, p.created, p.updated
					FROM players p LEFT JOIN teams t ON t.id = p.team_id
					WHERE p.team_id=@teamID ORDER BY p.name`

	return db.queryPlayers(ctx, query, pgx.NamedArgs{"teamID": teamID})
}

func (db *postgresDB) ListTopScorers(ctx context.Context, limit int) ([]model.Player, error) {
	const query = `SELECT p.id, p.name, p.team_id, t.name, p.position, p.jersey_num,
						p.goals, p.created, p.updated
					FROM players p LEFT JOIN teams t ON t.id = p.team_id
					WHERE p.goals > 0 ORDER BY p.goals DESC, p.name LIMIT @limit`

	return db.queryPlayers(ctx, query, pgx.NamedArgs{"limit": limit})
}

func (db *postgresDB) queryPlayers(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Player, error) {
	var rows pgx.Rows
	var err error
	if args != nil {
		rows, err = db.pool.Query(ctx, query, args)
	} else {
		rows, err = db.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying players: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var teamName, pos sql.NullString
	var jersey sql.NullInt32
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.TeamID,
		&teamName,
		&pos,
		&jersey,
		&result.Goals,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.TeamName = valueOrEmpty(teamName)
	result.Position = model.Position(valueOrEmpty(pos))
	if jersey.Valid {
		result.Jersey = int(jersey.Int32)
	}
	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}
