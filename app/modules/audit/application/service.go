package auditservice

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	auditdb "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/infrastructure/repositories"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// LogView is one audit row as rendered to admins.
type LogView struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}

// Stats is the admin overview.
type Stats struct {
	TotalUsers     int    `json:"total_users"`
	TotalAuditLogs int    `json:"total_audit_logs"`
	MetricsPath    string `json:"prometheus_metrics_available_at"`
}

// UserCounter is the slice of the user module the stats endpoint needs.
type UserCounter interface {
	CountUsers(ctx context.Context) (int, error)
}

// Service exposes the admin reads over the audit trail.
type Service interface {
	// List returns audit rows newest first. A non-positive limit falls
	// back to the default page size.
	List(ctx context.Context, offset, limit int) ([]LogView, error)
	// Stats returns the admin overview counters.
	Stats(ctx context.Context) (Stats, error)
}

// AuditService implements the Service interface.
type AuditService struct {
	repo   auditdb.Repository
	users  UserCounter
	logger *slog.Logger
	tracer trace.Tracer
}

// NewAuditService creates a new AuditService.
func NewAuditService(repo auditdb.Repository, users UserCounter, logger *slog.Logger, tracer trace.Tracer) *AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{
		repo:   repo,
		users:  users,
		logger: logger,
		tracer: tracer,
	}
}

// List returns audit rows newest first.
func (s *AuditService) List(ctx context.Context, offset, limit int) ([]LogView, error) {
	ctx, span := s.tracer.Start(ctx, "audit.List")
	defer span.End()

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	logs, err := s.repo.List(ctx, nil, offset, limit)
	if err != nil {
		return nil, err
	}

	views := make([]LogView, 0, len(logs))
	for _, l := range logs {
		views = append(views, LogView{
			ID:        l.ID,
			Timestamp: l.Timestamp,
			Username:  l.Username,
			Action:    l.Action,
			Details:   l.Details,
		})
	}
	return views, nil
}

// Stats returns the admin overview counters.
func (s *AuditService) Stats(ctx context.Context) (Stats, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Stats")
	defer span.End()

	totalUsers, err := s.users.CountUsers(ctx)
	if err != nil {
		return Stats{}, err
	}
	totalLogs, err := s.repo.Count(ctx, nil)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalUsers:     totalUsers,
		TotalAuditLogs: totalLogs,
		MetricsPath:    "/metrics",
	}, nil
}
