package battle

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	battleservice "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/application"
	battlehandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/infrastructure/handlers"
	battlerouter "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/infrastructure/router"
	battlestore "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/infrastructure/store"
	catalogservice "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/application"
	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

// Module bundles the battle service and its HTTP surface.
type Module struct {
	Service battleservice.Service
	Store   battlestore.Store
	Router  chi.Router
}

// NewModule creates the battle module.
func NewModule(
	catalog catalogservice.Service,
	rng random.Source,
	auditor auditdomain.Recorder,
	logger *slog.Logger,
	tracer trace.Tracer,
) *Module {
	store := battlestore.NewInMemory()
	service := battleservice.NewBattleService(catalog, store, rng, auditor, logger, tracer)
	handlers := battlehandlers.NewBattleHandlers(service, logger)

	return &Module{
		Service: service,
		Store:   store,
		Router:  battlerouter.New(handlers),
	}
}
