package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhishekarun2901/tsl/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const matchColumns = `m.id, m.team_a, ta.name, m.team_b, tb.name, m.score_a, m.score_b,
						m.status, m.match_time, m.matchday, m.goalscorers, m.created, m.updated`

const matchJoin = `FROM matches m
					LEFT JOIN teams ta ON ta.id = m.team_a
					LEFT JOIN teams tb ON tb.id = m.team_b`

func (db *postgresDB) AddMatch(ctx context.Context, m *model.Match) error {
	const query = `INSERT INTO matches (team_a, team_b, score_a, score_b, status,
											match_time, matchday, goalscorers, created)
					VALUES (@teamA, @teamB, @scoreA, @scoreB, @status,
								@matchTime, @matchday, @goalscorers, @created)
					RETURNING id`

	now := db.clock.Now().UTC()
	matchTime := m.MatchTime
	if matchTime.IsZero() {
		matchTime = now
	}
	if m.Status == model.StatusUnknown {
		m.Status = model.StatusUpcoming
	}
	if m.Matchday == 0 {
		m.Matchday = 1
	}

	goals, err := json.Marshal(stripGoalNames(m.Goals))
	if err != nil {
		return fmt.Errorf("error encoding goal events: %w", err)
	}

	args := pgx.NamedArgs{
		"teamA":       m.TeamAID,
		"teamB":       m.TeamBID,
		"scoreA":      m.ScoreA,
		"scoreB":      m.ScoreB,
		"status":      string(m.Status),
		"matchTime":   matchTime,
		"matchday":    m.Matchday,
		"goalscorers": goals,
		"created":     now,
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&m.ID); err != nil {
		return fmt.Errorf("error inserting match: %w", err)
	}
	m.MatchTime = matchTime
	return nil
}

func (db *postgresDB) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE m.id::text=@id`, matchColumns, matchJoin)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("error scanning match %s: %w", id, err)
	}

	if err := db.fillScorerNames(ctx, []model.Match{}, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (db *postgresDB) ListMatches(ctx context.Context) ([]model.Match, error) {
	query := fmt.Sprintf(`SELECT %s %s ORDER BY m.match_time`, matchColumns, matchJoin)
	return db.queryMatches(ctx, query, nil)
}

func (db *postgresDB) ListMatchesByStatus(ctx context.Context, status model.MatchStatus) ([]model.Match, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE m.status=@status ORDER BY m.match_time`, matchColumns, matchJoin)
	return db.queryMatches(ctx, query, pgx.NamedArgs{"status": string(status)})
}

func (db *postgresDB) queryMatches(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Match, error) {
	var rows pgx.Rows
	var err error
	if args != nil {
		rows, err = db.pool.Query(ctx, query, args)
	} else {
		rows, err = db.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying matches: %w", err)
	}
	defer rows.Close()

	results := make([]model.Match, 0, 8)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.fillScorerNames(ctx, results, nil); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *postgresDB) UpdateMatchScore(ctx context.Context, id string, scoreA, scoreB *int, status *model.MatchStatus) (model.MatchStatus, error) {
	// COALESCE keeps the stored value for any field not provided.
	const query = `UPDATE matches
					SET score_a = COALESCE(@scoreA, score_a),
						score_b = COALESCE(@scoreB, score_b),
						status = COALESCE(@status, status),
						updated = @updated
					WHERE id::text=@id
					RETURNING status`

	var statusStr *string
	if status != nil {
		s := string(*status)
		statusStr = &s
	}

	args := pgx.NamedArgs{
		"id":      id,
		"scoreA":  scoreA,
		"scoreB":  scoreB,
		"status":  statusStr,
		"updated": db.clock.Now().UTC(),
	}

	var result string
	if err := db.pool.QueryRow(ctx, query, args).Scan(&result); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StatusUnknown, ErrMatchNotFound
		}
		return model.StatusUnknown, fmt.Errorf("error updating match %s: %w", id, err)
	}
	return model.MatchStatus(result), nil
}

func (db *postgresDB) AddGoal(ctx context.Context, matchID string, g model.GoalEvent) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	goals, err := lockGoalEvents(ctx, tx, matchID)
	if err != nil {
		return err
	}

	g.PlayerName = ""
	g.TeamName = ""
	goals = append(goals, g)

	if err := saveGoalEvents(ctx, tx, matchID, goals, db.clock.Now().UTC()); err != nil {
		return err
	}

	if !g.OwnGoal {
		// A dangling scorer reference matches no row; the event is kept anyway.
		const incr = `UPDATE players SET goals = goals + 1, updated = @updated WHERE id::text=@id`
		args := pgx.NamedArgs{"id": g.PlayerID, "updated": db.clock.Now().UTC()}
		if _, err := tx.Exec(ctx, incr, args); err != nil {
			return fmt.Errorf("error incrementing goals for player %s: %w", g.PlayerID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) RemoveGoal(ctx context.Context, matchID string, index int) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	goals, err := lockGoalEvents(ctx, tx, matchID)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(goals) {
		return ErrGoalIndexOutOfRange
	}

	removed := goals[index]
	goals = append(goals[:index], goals[index+1:]...)

	if err := saveGoalEvents(ctx, tx, matchID, goals, db.clock.Now().UTC()); err != nil {
		return err
	}

	if !removed.OwnGoal {
		// The tally never goes below zero, even if it was edited out of band.
		const decr = `UPDATE players SET goals = goals - 1, updated = @updated
						WHERE id::text=@id AND goals > 0`
		args := pgx.NamedArgs{"id": removed.PlayerID, "updated": db.clock.Now().UTC()}
		if _, err := tx.Exec(ctx, decr, args); err != nil {
			return fmt.Errorf("error decrementing goals for player %s: %w", removed.PlayerID, err)
		}
	}

	return tx.Commit(ctx)
}

// lockGoalEvents reads a match's goal list while taking a row lock that
// serializes concurrent goal mutations on the same match.
func lockGoalEvents(ctx context.Context, tx pgx.Tx, matchID string) ([]model.GoalEvent, error) {
	const query = `SELECT goalscorers FROM matches WHERE id::text=@id FOR UPDATE`

	var raw []byte
	if err := tx.QueryRow(ctx, query, pgx.NamedArgs{"id": matchID}).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("error reading goal events for match %s: %w", matchID, err)
	}

	var goals []model.GoalEvent
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, fmt.Errorf("error decoding goal events for match %s: %w", matchID, err)
	}
	return goals, nil
}

func saveGoalEvents(ctx context.Context, tx pgx.Tx, matchID string, goals []model.GoalEvent, now time.Time) error {
	const query = `UPDATE matches SET goalscorers=@goals, updated=@updated WHERE id::text=@id`

	raw, err := json.Marshal(stripGoalNames(goals))
	if err != nil {
		return fmt.Errorf("error encoding goal events: %w", err)
	}

	args := pgx.NamedArgs{"id": matchID, "goals": raw, "updated": now}
	if _, err := tx.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving goal events for match %s: %w", matchID, err)
	}
	return nil
}

// stripGoalNames drops the read-side name decorations so they are never
// persisted inside the match row.
func stripGoalNames(goals []model.GoalEvent) []model.GoalEvent {
	if goals == nil {
		return []model.GoalEvent{}
	}
	stripped := make([]model.GoalEvent, len(goals))
	for i, g := range goals {
		g.PlayerName = ""
		g.TeamName = ""
		stripped[i] = g
	}
	return stripped
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	var result model.Match
	var teamAName, teamBName sql.NullString
	var status string
	var matchTime, created, updated pgtype.Timestamptz
	var rawGoals []byte
	err := row.Scan(
		&result.ID,
		&result.TeamAID,
		&teamAName,
		&result.TeamBID,
		&teamBName,
		&result.ScoreA,
		&result.ScoreB,
		&status,
		&matchTime,
		&result.Matchday,
		&rawGoals,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.TeamAName = valueOrEmpty(teamAName)
	result.TeamBName = valueOrEmpty(teamBName)
	result.Status = model.MatchStatus(status)
	result.MatchTime = matchTime.Time
	result.Created = created.Time
	result.Updated = updated.Time

	if err := json.Unmarshal(rawGoals, &result.Goals); err != nil {
		return nil, fmt.Errorf("error decoding goal events: %w", err)
	}
	return &result, nil
}

// fillScorerNames decorates goal events with player and team names. Events
// whose references no longer resolve keep empty names.
func (db *postgresDB) fillScorerNames(ctx context.Context, matches []model.Match, single *model.Match) error {
	all := matches
	if single != nil {
		all = append(all, *single)
	}

	playerIDs := make([]string, 0, 8)
	teamIDs := make([]string, 0, 8)
	seenPlayers := make(map[string]bool)
	seenTeams := make(map[string]bool)
	for _, m := range all {
		for _, g := range m.Goals {
			if !seenPlayers[g.PlayerID] {
				seenPlayers[g.PlayerID] = true
				playerIDs = append(playerIDs, g.PlayerID)
			}
			if !seenTeams[g.TeamID] {
				seenTeams[g.TeamID] = true
				teamIDs = append(teamIDs, g.TeamID)
			}
		}
	}
	if len(playerIDs) == 0 && len(teamIDs) == 0 {
		return nil
	}

	playerNames, err := db.lookupNames(ctx, `SELECT id, name FROM players WHERE id::text = ANY(@ids)`, playerIDs)
	if err != nil {
		return err
	}
	teamNames, err := db.lookupNames(ctx, `SELECT id, name FROM teams WHERE id::text = ANY(@ids)`, teamIDs)
	if err != nil {
		return err
	}

	decorate := func(m *model.Match) {
		for i := range m.Goals {
			m.Goals[i].PlayerName = playerNames[m.Goals[i].PlayerID]
			m.Goals[i].TeamName = teamNames[m.Goals[i].TeamID]
		}
	}
	for i := range matches {
		decorate(&matches[i])
	}
	if single != nil {
		decorate(single)
	}
	return nil
}

func (db *postgresDB) lookupNames(ctx context.Context, query string, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("error looking up names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
