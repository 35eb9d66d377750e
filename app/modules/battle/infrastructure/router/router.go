package battlerouter

import (
	"github.com/go-chi/chi/v5"

	battlehandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/infrastructure/handlers"
)

// New returns the battle subrouter.
func New(handlers *battlehandlers.BattleHandlers) chi.Router {
	r := chi.NewRouter()
	r.Post("/start", handlers.HandleStartBattle)
	r.Post("/{battleID}/action", handlers.HandleTakeAction)
	return r
}
