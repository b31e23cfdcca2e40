package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abhishekarun2901/tsl/controller"
	"github.com/abhishekarun2901/tsl/db"
	"github.com/abhishekarun2901/tsl/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func rootHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"message": "tournament API is running"})
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		team, players, err := ctrl.GetTeam(r.Context(), teamID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"team":    team,
			"players": players,
		})
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func listMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := ctrl.ListMatches(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, matches)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.GetStandings(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func topScorersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scorers, err := ctrl.GetTopScorers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, scorers)
	}
}

func addTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		Name    string `json:"name"`
		Logo    string `json:"logo"`
		Manager string `json:"manager"`
		Captain string `json:"captain"`
		Pool    string `json:"pool"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, fmt.Errorf("error parsing request body: %w", err))
			return
		}

		team := &model.Team{
			Name:    req.Name,
			Logo:    req.Logo,
			Manager: req.Manager,
			Captain: req.Captain,
			Pool:    model.ParsePool(req.Pool),
		}
		team, err := ctrl.AddTeam(r.Context(), team)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, team)
	}
}

func addPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		Name     string `json:"name"`
		TeamID   string `json:"teamId"`
		Position string `json:"position"`
		Jersey   int    `json:"jerseyNumber"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, fmt.Errorf("error parsing request body: %w", err))
			return
		}

		player := &model.Player{
			Name:     req.Name,
			TeamID:   req.TeamID,
			Position: model.ParsePosition(req.Position),
			Jersey:   req.Jersey,
		}
		player, err := ctrl.AddPlayer(r.Context(), player)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, player)
	}
}

func addMatchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		TeamA     string    `json:"teamA"`
		TeamB     string    `json:"teamB"`
		MatchTime time.Time `json:"matchTime"`
		Matchday  int       `json:"matchday"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, fmt.Errorf("error parsing request body: %w", err))
			return
		}

		match, err := ctrl.AddMatch(r.Context(), req.TeamA, req.TeamB, req.MatchTime, req.Matchday)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, match)
	}
}

func updateScoreHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		MatchID string `json:"matchId"`
		ScoreA  *int   `json:"scoreA"`
		ScoreB  *int   `json:"scoreB"`
		Status  string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, fmt.Errorf("error parsing request body: %w", err))
			return
		}

		var status *model.MatchStatus
		if req.Status != "" {
			s := model.ParseMatchStatus(req.Status)
			if s == model.StatusUnknown {
				renderBadRequest(render, w, fmt.Errorf("unknown match status '%s'", req.Status))
				return
			}
			status = &s
		}

		match, err := ctrl.UpdateMatchScore(r.Context(), req.MatchID, req.ScoreA, req.ScoreB, status)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, match)
	}
}

func addGoalHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		MatchID  string `json:"matchId"`
		PlayerID string `json:"playerId"`
		TeamID   string `json:"teamId"`
		Minute   int    `json:"minute"`
		OwnGoal  bool   `json:"isOwnGoal"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, fmt.Errorf("error parsing request body: %w", err))
			return
		}

		match, err := ctrl.AddGoal(r.Context(), req.MatchID, req.PlayerID, req.TeamID, req.Minute, req.OwnGoal)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, match)
	}
}

func removeGoalHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		MatchID   string `json:"matchId"`
		GoalIndex int    `json:"goalIndex"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, fmt.Errorf("error parsing request body: %w", err))
			return
		}

		match, err := ctrl.RemoveGoal(r.Context(), req.MatchID, req.GoalIndex)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, match)
	}
}

func verifyHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Authorized",
		})
	}
}

func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrTeamNotFound),
		errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrMatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, controller.ErrInvalidArgument):
		status = http.StatusBadRequest
	}
	render.JSON(w, status, map[string]string{"error": err.Error()})
}

func renderBadRequest(render *render.Render, w http.ResponseWriter, err error) {
	render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}
