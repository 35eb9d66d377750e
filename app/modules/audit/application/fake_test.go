package auditservice

import (
	"context"
	"sync"
	"time"

	"github.com/uptrace/bun"

	auditdb "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/infrastructure/repositories"
)

// ------------------------
// Fake Repository
// ------------------------

type FakeRepository struct {
	mu     sync.Mutex
	Logs   []*auditdb.AuditLog
	nextID int64
}

func (f *FakeRepository) Insert(ctx context.Context, _ bun.IDB, log *auditdb.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	log.ID = f.nextID
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	cp := *log
	f.Logs = append(f.Logs, &cp)
	return nil
}

// List returns rows newest first, mirroring the SQL ordering.
func (f *FakeRepository) List(ctx context.Context, _ bun.IDB, offset, limit int) ([]*auditdb.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reversed := make([]*auditdb.AuditLog, 0, len(f.Logs))
	for i := len(f.Logs) - 1; i >= 0; i-- {
		cp := *f.Logs[i]
		reversed = append(reversed, &cp)
	}
	if offset >= len(reversed) {
		return nil, nil
	}
	reversed = reversed[offset:]
	if limit < len(reversed) {
		reversed = reversed[:limit]
	}
	return reversed, nil
}

func (f *FakeRepository) Count(ctx context.Context, _ bun.IDB) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Logs), nil
}

func (f *FakeRepository) snapshot() []auditdb.AuditLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]auditdb.AuditLog, 0, len(f.Logs))
	for _, l := range f.Logs {
		out = append(out, *l)
	}
	return out
}

// ------------------------
// Fake user counter
// ------------------------

type fakeUserCounter struct {
	count int
}

func (f *fakeUserCounter) CountUsers(ctx context.Context) (int, error) {
	return f.count, nil
}
