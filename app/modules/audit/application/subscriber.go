package auditservice

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Clone-Wars-Club/arena-bot/app/eventbus"
	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	auditdb "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/infrastructure/repositories"
)

// Subscriber drains audit entries off the event bus into the audit table.
type Subscriber struct {
	bus    *eventbus.EventBus
	repo   auditdb.Repository
	logger *slog.Logger
}

// NewSubscriber creates the persisting audit subscriber.
func NewSubscriber(bus *eventbus.EventBus, repo auditdb.Repository, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{bus: bus, repo: repo, logger: logger}
}

// Start subscribes to the audit topic and consumes it until ctx is done or
// the bus closes.
func (s *Subscriber) Start(ctx context.Context) error {
	messages, err := s.bus.Subscribe(ctx, auditdomain.TopicAuditEntry)
	if err != nil {
		return err
	}
	go s.run(ctx, messages)
	return nil
}

func (s *Subscriber) run(ctx context.Context, messages <-chan *message.Message) {
	for msg := range messages {
		var entry auditdomain.Entry
		if err := json.Unmarshal(msg.Payload, &entry); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal audit entry",
				slog.String("message_id", msg.UUID),
				slog.Any("error", err),
			)
			msg.Ack()
			continue
		}

		err := s.repo.Insert(ctx, nil, &auditdb.AuditLog{
			Username: entry.Username,
			Action:   entry.Action,
			Details:  entry.Details,
		})
		if err != nil {
			// The trail is best-effort; a failed write must not wedge the bus.
			s.logger.ErrorContext(ctx, "failed to persist audit entry",
				slog.String("action", entry.Action),
				slog.Any("error", err),
			)
		}
		msg.Ack()
	}
}
