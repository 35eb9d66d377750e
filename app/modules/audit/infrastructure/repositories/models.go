package auditdb

import (
	"time"

	"github.com/uptrace/bun"
)

// AuditLog is one persisted audit trail row.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Timestamp time.Time `bun:"timestamp,nullzero,notnull,default:current_timestamp"`
	Username  string    `bun:"username,notnull"`
	Action    string    `bun:"action,notnull"`
	Details   string    `bun:"details"`
}
