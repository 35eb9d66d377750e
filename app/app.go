package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"

	"github.com/Clone-Wars-Club/arena-bot/app/eventbus"
	"github.com/Clone-Wars-Club/arena-bot/app/modules/audit"
	auditservice "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/application"
	"github.com/Clone-Wars-Club/arena-bot/app/modules/battle"
	"github.com/Clone-Wars-Club/arena-bot/app/modules/catalog"
	"github.com/Clone-Wars-Club/arena-bot/app/modules/tournament"
	"github.com/Clone-Wars-Club/arena-bot/app/modules/user"
	userhandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/handlers"
	"github.com/Clone-Wars-Club/arena-bot/config"
	"github.com/Clone-Wars-Club/arena-bot/db/bundb"
	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

// App wires the modules together behind one HTTP router.
type App struct {
	Config *config.Config
	Router chi.Router

	db     *bun.DB
	bus    *eventbus.EventBus
	logger *slog.Logger
}

// New initializes the application.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := bundb.New(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus := eventbus.New(logger)
	tracer := otel.Tracer("github.com/Clone-Wars-Club/arena-bot")
	rng := random.NewLocked()

	// The recorder side of the audit trail exists before the audit module:
	// every other module publishes through it.
	auditor := auditservice.NewRecorder(bus, logger)

	catalogModule := catalog.NewModule(logger)
	userModule := user.NewModule(db, cfg, auditor, logger, tracer)
	auditModule := audit.NewModule(db, bus, userModule.Service, logger, tracer)
	battleModule := battle.NewModule(catalogModule.Service, rng, auditor, logger, tracer)
	tournamentModule := tournament.NewModule(
		db, catalogModule.Service, rng, auditor, logger, tracer,
		userModule.RequireAuth, userModule.RequireAdmin,
	)

	if err := auditModule.Start(ctx); err != nil {
		db.Close()
		bus.Close()
		return nil, fmt.Errorf("failed to start audit subscriber: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(userhandlers.CORSMiddleware(cfg.HTTP.CORSOrigins))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Mount("/auth", userModule.Router)
	router.Mount("/tournaments", tournamentModule.Router)

	router.Group(func(r chi.Router) {
		r.Use(userModule.RequireAuth)
		r.Mount("/worlds", catalogModule.Router)
		r.Mount("/battles", battleModule.Router)
	})

	adminRouter := chi.NewRouter()
	adminRouter.Use(userModule.RequireAuth, userModule.RequireAdmin)
	adminRouter.Get("/logs", auditModule.Handlers.HandleLogs)
	adminRouter.Get("/stats", auditModule.Handlers.HandleStats)
	adminRouter.Post("/promote/{username}", userModule.Handlers.HandlePromote)
	router.Mount("/admin", adminRouter)

	return &App{
		Config: cfg,
		Router: router,
		db:     db,
		bus:    bus,
		logger: logger,
	}, nil
}

// Close releases the app's long-lived resources.
func (a *App) Close() error {
	if err := a.bus.Close(); err != nil {
		a.logger.Error("failed to close event bus", slog.Any("error", err))
	}
	return a.db.Close()
}
