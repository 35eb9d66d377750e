package userservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	userdb "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/repositories"
)

// ------------------------
// Fake Repository
// ------------------------

type FakeRepository struct {
	mu     sync.Mutex
	users  map[string]*userdb.User
	nextID int64
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[string]*userdb.User)}
}

func (f *FakeRepository) Create(ctx context.Context, _ bun.IDB, user *userdb.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Username]; exists {
		return userdb.ErrDuplicateUsername
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[cp.Username] = &cp
	return nil
}

func (f *FakeRepository) GetByUsername(ctx context.Context, _ bun.IDB, username string) (*userdb.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[username]
	if !ok {
		return nil, userdb.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}

func (f *FakeRepository) UpdateRole(ctx context.Context, _ bun.IDB, user *userdb.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.Username]
	if !ok {
		return userdb.ErrNotFound
	}
	stored.Role = user.Role
	return nil
}

func (f *FakeRepository) UpdatePassword(ctx context.Context, _ bun.IDB, user *userdb.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.Username]
	if !ok {
		return userdb.ErrNotFound
	}
	stored.HashedPassword = user.HashedPassword
	stored.MustChangePassword = user.MustChangePassword
	return nil
}

func (f *FakeRepository) Count(ctx context.Context, _ bun.IDB) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users), nil
}

// ------------------------
// Fake Audit Recorder
// ------------------------

type FakeRecorder struct {
	mu      sync.Mutex
	Entries []auditdomain.Entry
}

func (f *FakeRecorder) Record(ctx context.Context, entry auditdomain.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Entries = append(f.Entries, entry)
}
