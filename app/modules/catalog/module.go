package catalog

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	catalogservice "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/application"
	catalogdata "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/infrastructure/catalogdata"
	cataloghandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/infrastructure/handlers"
	catalogrouter "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/infrastructure/router"
)

// Module bundles the catalog service and its HTTP surface.
type Module struct {
	Service catalogservice.Service
	Router  chi.Router
}

// NewModule creates the catalog module over the static dataset.
func NewModule(logger *slog.Logger) *Module {
	service := catalogservice.NewCatalogService(logger, catalogdata.Worlds, catalogdata.Characters)
	handlers := cataloghandlers.NewCatalogHandlers(service, logger)

	return &Module{
		Service: service,
		Router:  catalogrouter.New(handlers),
	}
}
