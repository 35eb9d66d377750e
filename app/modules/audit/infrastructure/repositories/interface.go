package auditdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository is the persistence surface of the audit module.
type Repository interface {
	Insert(ctx context.Context, db bun.IDB, log *AuditLog) error
	// List returns rows newest first.
	List(ctx context.Context, db bun.IDB, offset, limit int) ([]*AuditLog, error)
	Count(ctx context.Context, db bun.IDB) (int, error)
}
