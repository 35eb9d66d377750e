package auditservice

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Clone-Wars-Club/arena-bot/app/eventbus"
	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
)

// BusRecorder implements auditdomain.Recorder by publishing entries on the
// event bus. Recording never fails the emitting request; publish errors are
// logged and dropped.
type BusRecorder struct {
	bus    *eventbus.EventBus
	logger *slog.Logger
}

// NewRecorder creates a bus-backed audit recorder.
func NewRecorder(bus *eventbus.EventBus, logger *slog.Logger) *BusRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &BusRecorder{bus: bus, logger: logger}
}

// Record publishes one audit entry.
func (r *BusRecorder) Record(ctx context.Context, entry auditdomain.Entry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to marshal audit entry", slog.Any("error", err))
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := r.bus.Publish(auditdomain.TopicAuditEntry, msg); err != nil {
		r.logger.ErrorContext(ctx, "failed to publish audit entry",
			slog.String("action", entry.Action),
			slog.Any("error", err),
		)
	}
}
