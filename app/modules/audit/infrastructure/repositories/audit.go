package auditdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new audit repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Insert persists one audit row.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, log *AuditLog) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(log).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

// List returns rows newest first.
func (r *Impl) List(ctx context.Context, db bun.IDB, offset, limit int) ([]*AuditLog, error) {
	db = r.resolveDB(db)
	var logs []*AuditLog
	err := db.NewSelect().
		Model(&logs).
		Order("al.timestamp DESC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}

// Count returns the total number of audit rows.
func (r *Impl) Count(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().Model((*AuditLog)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	return count, nil
}
