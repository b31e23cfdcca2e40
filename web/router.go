package web

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/abhishekarun2901/tsl/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/unrolled/render"
)

const adminSecretHeader = "X-Admin-Secret"

func getRouter(cfg Config, ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", adminSecretHeader},
	}).Handler)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", listTeamsHandler(ctrl, render))
		r.Get("/teams/{teamID}", getTeamHandler(ctrl, render))
		r.Get("/players", listPlayersHandler(ctrl, render))
		r.Get("/matches", listMatchesHandler(ctrl, render))
		r.Get("/standings", standingsHandler(ctrl, render))
		r.Get("/topscorers", topScorersHandler(ctrl, render))

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminSecretAuth(cfg.AdminSecret, render))

			r.Post("/team", addTeamHandler(ctrl, render))
			r.Post("/player", addPlayerHandler(ctrl, render))
			r.Post("/match", addMatchHandler(ctrl, render))
			r.Patch("/match/score", updateScoreHandler(ctrl, render))
			r.Post("/match/goals", addGoalHandler(ctrl, render))
			r.Delete("/match/goals", removeGoalHandler(ctrl, render))
			r.Post("/verify", verifyHandler(render))
		})
	})

	return r
}

// adminSecretAuth guards the admin subtree with a shared-secret header check.
func adminSecretAuth(secret string, render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminSecretHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
