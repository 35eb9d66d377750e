package tournamentservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	catalogservice "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/application"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

var (
	matchesSimulated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_tournament_matches_simulated_total",
		Help: "Total number of tournament matches resolved by simulation.",
	})
	tournamentsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_tournaments_completed_total",
		Help: "Total number of tournaments driven to completion.",
	})
)

// TxRunner runs a function inside one database transaction. *bun.DB
// satisfies it; tests substitute a pass-through.
type TxRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}

// TournamentService implements the Service interface.
type TournamentService struct {
	repo    tournamentdb.Repository
	db      TxRunner
	catalog catalogservice.Service
	rng     random.Source
	auditor auditdomain.Recorder
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(
	repo tournamentdb.Repository,
	db TxRunner,
	catalog catalogservice.Service,
	rng random.Source,
	auditor auditdomain.Recorder,
	logger *slog.Logger,
	tracer trace.Tracer,
) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentService{
		repo:    repo,
		db:      db,
		catalog: catalog,
		rng:     rng,
		auditor: auditor,
		logger:  logger,
		tracer:  tracer,
	}
}
