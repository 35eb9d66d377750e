package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create persists a new user. A username collision maps to
// ErrDuplicateUsername.
func (r *Impl) Create(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(user).Exec(ctx); err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their unique username.
func (r *Impl) GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("u.username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateRole persists a role change.
func (r *Impl) UpdateRole(ctx context.Context, db bun.IDB, user *User) error {
	return r.updateColumns(ctx, db, user, "role")
}

// UpdatePassword persists a new password hash and the force-change flag.
func (r *Impl) UpdatePassword(ctx context.Context, db bun.IDB, user *User) error {
	return r.updateColumns(ctx, db, user, "hashed_password", "must_change_password")
}

func (r *Impl) updateColumns(ctx context.Context, db bun.IDB, user *User, columns ...string) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(user).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of accounts.
func (r *Impl) Count(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().Model((*User)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
