package audit

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/Clone-Wars-Club/arena-bot/app/eventbus"
	auditservice "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/application"
	audithandlers "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/infrastructure/handlers"
	auditdb "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/infrastructure/repositories"
)

// Module bundles the audit trail: the subscriber that persists published
// entries and the admin reads over them. The recorder side is created
// separately (see auditservice.NewRecorder) because the user module needs
// it before this module can exist.
type Module struct {
	Service    auditservice.Service
	Handlers   *audithandlers.AuditHandlers
	subscriber *auditservice.Subscriber
}

// NewModule creates the audit module.
func NewModule(
	db *bun.DB,
	bus *eventbus.EventBus,
	users auditservice.UserCounter,
	logger *slog.Logger,
	tracer trace.Tracer,
) *Module {
	repo := auditdb.NewRepository(db)
	service := auditservice.NewAuditService(repo, users, logger, tracer)

	return &Module{
		Service:    service,
		Handlers:   audithandlers.NewAuditHandlers(service, logger),
		subscriber: auditservice.NewSubscriber(bus, repo, logger),
	}
}

// Start begins draining audit entries into the database.
func (m *Module) Start(ctx context.Context) error {
	return m.subscriber.Start(ctx)
}
