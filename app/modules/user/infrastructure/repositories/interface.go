package userdb

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when a user is not found.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
)

// Repository is the persistence surface of the user module.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, user *User) error
	GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error)
	UpdateRole(ctx context.Context, db bun.IDB, user *User) error
	UpdatePassword(ctx context.Context, db bun.IDB, user *User) error
	Count(ctx context.Context, db bun.IDB) (int, error)
}
