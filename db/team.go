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

func (db *postgresDB) AddTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO teams (name, logo, manager, captain, pool, created)
					VALUES (@name, @logo, @manager, @captain, @pool, @created)
					RETURNING id`

	args := pgx.NamedArgs{
		"name":    t.Name,
		"logo":    t.Logo,
		"manager": t.Manager,
		"captain": t.Captain,
		"pool":    string(t.Pool),
		"created": db.clock.Now().UTC(),
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&t.ID); err != nil {
		return fmt.Errorf("error inserting team: %w", err)
	}
	return nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	const query = `SELECT id, name, logo, manager, captain, pool, created, updated
					FROM teams WHERE id::text=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %s: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, name, logo, manager, captain, pool, created, updated
					FROM teams ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	return results, rows.Err()
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var logo sql.NullString
	var pool string
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&logo,
		&result.Manager,
		&result.Captain,
		&pool,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Logo = valueOrEmpty(logo)
	result.Pool = model.Pool(pool)
	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
