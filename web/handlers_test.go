package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/abhishekarun2901/tsl/controller"
	"github.com/abhishekarun2901/tsl/model"
	"github.com/abhishekarun2901/tsl/testutils"
	"github.com/unrolled/render"
)

const testSecret = "pa55word"

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()

	teams, err := testutils.InsertTestTeams(testDB.DB)
	if err != nil {
		fmt.Printf("error inserting test teams: %v", err)
	}
	if _, err := testutils.InsertTestPlayers(testDB.DB, teams); err != nil {
		fmt.Printf("error inserting test players: %v", err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctrl, err := controller.New(testDB.Clock, testDB.DB)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	cfg := Config{Port: 0, AdminSecret: testSecret}
	router := getRouter(cfg, ctrl, render.New())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestRootHandler(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("error calling root: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestAdminAuth(t *testing.T) {
	server := newTestServer(t)

	tests := map[string]struct {
		secret string
		want   int
	}{
		"no secret":    {secret: "", want: http.StatusUnauthorized},
		"wrong secret": {secret: "letmein", want: http.StatusUnauthorized},
		"good secret":  {secret: testSecret, want: http.StatusOK},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, server.URL+"/api/admin/verify", nil)
			if err != nil {
				t.Fatalf("error building request: %v", err)
			}
			if tc.secret != "" {
				req.Header.Set(adminSecretHeader, tc.secret)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("error calling verify: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.want {
				t.Errorf("unexpected status code. Got: %d, want: %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestTournamentFlow(t *testing.T) {
	server := newTestServer(t)

	// Create two teams through the admin API.
	teamA := adminPost[model.Team](t, server, "/api/admin/team", map[string]any{
		"name": "Fiorentina", "manager": "Amal Sidhan", "captain": "Afreen", "pool": "A",
	})
	teamB := adminPost[model.Team](t, server, "/api/admin/team", map[string]any{
		"name": "Real Betis", "manager": "Sarang", "captain": "Harisankar", "pool": "A",
	})

	scorer := adminPost[model.Player](t, server, "/api/admin/player", map[string]any{
		"name": "Jeswin", "teamId": teamA.ID, "position": "Forward", "jerseyNumber": 9,
	})

	match := adminPost[model.Match](t, server, "/api/admin/match", map[string]any{
		"teamA": teamA.ID, "teamB": teamB.ID, "matchday": 1,
	})
	if match.Status != model.StatusUpcoming {
		t.Fatalf("expected new match to be upcoming, got %s", match.Status)
	}

	// Record a goal.
	match = adminRequest[model.Match](t, server, http.MethodPost, "/api/admin/match/goals", map[string]any{
		"matchId": match.ID, "playerId": scorer.ID, "teamId": teamA.ID, "minute": 17,
	}, http.StatusOK)
	if len(match.Goals) != 1 || match.Goals[0].PlayerName != "Jeswin" {
		t.Fatalf("unexpected goal events: %v", match.Goals)
	}

	// Finish the match 1-0 and confirm the table was rebuilt.
	match = adminRequest[model.Match](t, server, http.MethodPatch, "/api/admin/match/score", map[string]any{
		"matchId": match.ID, "scoreA": 1, "scoreB": 0, "status": "finished",
	}, http.StatusOK)
	if match.Status != model.StatusFinished {
		t.Fatalf("expected finished match, got %s", match.Status)
	}

	resp, err := http.Get(server.URL + "/api/standings")
	if err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	defer resp.Body.Close()

	var standings []model.Standing
	if err := json.NewDecoder(resp.Body).Decode(&standings); err != nil {
		t.Fatalf("error decoding standings: %v", err)
	}

	var winner *model.Standing
	for i := range standings {
		if standings[i].TeamID == teamA.ID {
			winner = &standings[i]
		}
	}
	if winner == nil {
		t.Fatalf("no standings row for team A in %v", standings)
	}
	if winner.Won != 1 || winner.Points != 3 {
		t.Errorf("unexpected winner row: %+v", winner)
	}

	// The scorer shows up on the public leaderboard.
	resp2, err := http.Get(server.URL + "/api/topscorers")
	if err != nil {
		t.Fatalf("error getting top scorers: %v", err)
	}
	defer resp2.Body.Close()

	var scorers []model.Player
	if err := json.NewDecoder(resp2.Body).Decode(&scorers); err != nil {
		t.Fatalf("error decoding top scorers: %v", err)
	}
	found := false
	for _, p := range scorers {
		if p.ID == scorer.ID && p.Goals == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected scorer in leaderboard: %v", scorers)
	}
}

func TestRemoveGoal_badRequests(t *testing.T) {
	server := newTestServer(t)

	// Unknown match id.
	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/admin/match/goals",
		bytes.NewBufferString(`{"matchId": "b5ae361e-0000-0000-0000-000000000000", "goalIndex": 0}`))
	if err != nil {
		t.Fatalf("error building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(adminSecretHeader, testSecret)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error calling remove goal: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status code. Got: %d, want: %d", resp.StatusCode, http.StatusNotFound)
	}
}

func adminPost[T any](t *testing.T, server *httptest.Server, path string, body map[string]any) T {
	t.Helper()
	return adminRequest[T](t, server, http.MethodPost, path, body, http.StatusCreated)
}

func adminRequest[T any](t *testing.T, server *httptest.Server, method, path string, body map[string]any, wantStatus int) T {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("error encoding request body: %v", err)
	}

	req, err := http.NewRequest(method, server.URL+path, bytes.NewBuffer(raw))
	if err != nil {
		t.Fatalf("error building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(adminSecretHeader, testSecret)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s - unexpected status code. Got: %d, want: %d", method, path, resp.StatusCode, wantStatus)
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return result
}
