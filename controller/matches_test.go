package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/abhishekarun2901/tsl/db"
	"github.com/abhishekarun2901/tsl/model"
)

func TestAddMatch_validation(t *testing.T) {
	ctx := context.Background()
	ctrl := newController(t)

	teamA := createTeam(t, ctrl, "Liverpool FC")

	if _, err := ctrl.AddMatch(ctx, teamA.ID, teamA.ID, testDB.Clock.Now(), 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for identical teams, got: %v", err)
	}

	missing := "b5ae361e-0000-0000-0000-000000000000"
	if _, err := ctrl.AddMatch(ctx, teamA.ID, missing, testDB.Clock.Now(), 1); !errors.Is(err, db.ErrTeamNotFound) {
		t.Errorf("expected ErrTeamNotFound, got: %v", err)
	}
}

func TestUpdateMatchScore_partialUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := newController(t)

	teamA := createTeam(t, ctrl, "Inter Milan")
	teamB := createTeam(t, ctrl, "Fiorentina")
	m := createMatch(t, ctrl, teamA.ID, teamB.ID)

	scoreA := 3
	res, err := ctrl.UpdateMatchScore(ctx, m.ID, &scoreA, nil, nil)
	if err != nil {
		t.Fatalf("error updating score: %v", err)
	}
	if res.ScoreA != 3 || res.ScoreB != 0 || res.Status != model.StatusUpcoming {
		t.Errorf("partial update clobbered other fields: %+v", res)
	}

	live := model.StatusLive
	res, err = ctrl.UpdateMatchScore(ctx, m.ID, nil, nil, &live)
	if err != nil {
		t.Fatalf("error updating status: %v", err)
	}
	if res.ScoreA != 3 || res.Status != model.StatusLive {
		t.Errorf("status-only update lost the score: %+v", res)
	}
}

func TestUpdateMatchScore_validation(t *testing.T) {
	ctx := context.Background()
	ctrl := newController(t)

	teamA := createTeam(t, ctrl, "Lazio")
	teamB := createTeam(t, ctrl, "AS Monaco")
	m := createMatch(t, ctrl, teamA.ID, teamB.ID)

	negative := -1
	if _, err := ctrl.UpdateMatchScore(ctx, m.ID, &negative, nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for negative score, got: %v", err)
	}

	bad := model.MatchStatus("postponed")
	if _, err := ctrl.UpdateMatchScore(ctx, m.ID, nil, nil, &bad); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unknown status, got: %v", err)
	}

	scoreA := 1
	if _, err := ctrl.UpdateMatchScore(ctx, "b5ae361e-0000-0000-0000-000000000000", &scoreA, nil, nil); !errors.Is(err, db.ErrMatchNotFound) {
		t.Errorf("expected ErrMatchNotFound, got: %v", err)
	}
}

func TestUpdateMatchScore_finishTriggersRecompute(t *testing.T) {
	ctx := context.Background()
	ctrl := newController(t)

	teamA := createTeam(t, ctrl, "São Paulo FC")
	teamB := createTeam(t, ctrl, "Força FC")
	// No goal events: the recompute runs off the admin-entered score alone.
	m := createMatch(t, ctrl, teamA.ID, teamB.ID)

	scoreA, scoreB := 2, 1
	finished := model.StatusFinished
	res, err := ctrl.UpdateMatchScore(ctx, m.ID, &scoreA, &scoreB, &finished)
	if err != nil {
		t.Fatalf("error finishing match: %v", err)
	}
	if res.Status != model.StatusFinished {
		t.Fatalf("expected finished status, got %s", res.Status)
	}

	standings, err := ctrl.GetStandings(ctx)
	if err != nil {
		t.Fatalf("error getting standings: %v", err)
	}

	a := standingFor(t, standings, teamA.ID)
	if a.Played != 1 || a.Won != 1 || a.Draw != 0 || a.Lost != 0 {
		t.Errorf("unexpected counts for winner: %+v", a)
	}
	if a.GoalsFor != 2 || a.GoalsAgn != 1 || a.GoalDiff != 1 || a.Points != 3 {
		t.Errorf("unexpected aggregates for winner: %+v", a)
	}

	b := standingFor(t, standings, teamB.ID)
	if b.Played != 1 || b.Lost != 1 || b.GoalDiff != -1 || b.Points != 0 {
		t.Errorf("unexpected aggregates for loser: %+v", b)
	}

	// Editing the score of a finished match and resubmitting finished status
	// folds the correction into the table.
	scoreB = 2
	if _, err := ctrl.UpdateMatchScore(ctx, m.ID, nil, &scoreB, &finished); err != nil {
		t.Fatalf("error correcting score: %v", err)
	}

	standings, err = ctrl.GetStandings(ctx)
	if err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	a = standingFor(t, standings, teamA.ID)
	if a.Draw != 1 || a.Points != 1 {
		t.Errorf("correction not reflected for team A: %+v", a)
	}
}

func TestGetTeam_withRoster(t *testing.T) {
	ctx := context.Background()
	ctrl := newController(t)

	team := createTeam(t, ctrl, "Arsenal")
	createPlayer(t, ctrl, team.ID, "Shihan")
	createPlayer(t, ctrl, team.ID, "Ben Jude Tharsiuse")

	res, players, err := ctrl.GetTeam(ctx, team.ID)
	if err != nil {
		t.Fatalf("error getting team: %v", err)
	}
	if res.ID != team.ID {
		t.Errorf("expected team %s, got %s", team.ID, res.ID)
	}
	if len(players) != 2 {
		t.Errorf("expected 2 players, got %d", len(players))
	}
}
