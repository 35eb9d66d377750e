package tournamentrouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	tournamenthandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/handlers"
)

// New returns the tournament subrouter. Reads are public; mutations sit
// behind the auth middleware and the xlsx export behind the admin check.
func New(handlers *tournamenthandlers.TournamentHandlers, requireAuth, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/open", handlers.HandleListOpen)
	r.Get("/leaderboard", handlers.HandleLeaderboard)
	r.Get("/leaderboard/chart", handlers.HandleLeaderboardChart)
	r.Get("/{tournamentID}", handlers.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/create", handlers.HandleCreate)
		r.Post("/{tournamentID}/join", handlers.HandleJoin)
		r.Post("/match/{matchID}/simulate", handlers.HandleSimulateMatch)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth, requireAdmin)
		r.Get("/leaderboard/export", handlers.HandleExportLeaderboard)
	})

	return r
}
