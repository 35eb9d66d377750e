package catalogrouter

import (
	"github.com/go-chi/chi/v5"

	cataloghandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/infrastructure/handlers"
)

// New returns the catalog subrouter.
func New(handlers *cataloghandlers.CatalogHandlers) chi.Router {
	r := chi.NewRouter()
	r.Get("/", handlers.HandleListWorlds)
	r.Get("/{worldID}/characters", handlers.HandleListWorldCharacters)
	return r
}
