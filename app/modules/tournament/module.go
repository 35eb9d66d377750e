package tournament

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	catalogservice "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/application"
	tournamentservice "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/application"
	tournamenthandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/handlers"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
	tournamentrouter "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/router"
	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

// Module bundles the tournament service and its HTTP surface.
type Module struct {
	Service tournamentservice.Service
	Router  chi.Router
}

// NewModule creates the tournament module.
func NewModule(
	db *bun.DB,
	catalog catalogservice.Service,
	rng random.Source,
	auditor auditdomain.Recorder,
	logger *slog.Logger,
	tracer trace.Tracer,
	requireAuth, requireAdmin func(http.Handler) http.Handler,
) *Module {
	repo := tournamentdb.NewRepository(db)
	service := tournamentservice.NewTournamentService(repo, db, catalog, rng, auditor, logger, tracer)
	handlers := tournamenthandlers.NewTournamentHandlers(service, logger)

	return &Module{
		Service: service,
		Router:  tournamentrouter.New(handlers, requireAuth, requireAdmin),
	}
}
