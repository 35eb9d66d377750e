// Package userdomain defines the account types shared across modules.
package userdomain

import "context"

// Role is a user's authorization level.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// User is the authenticated account attached to a request.
type User struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	Role               Role   `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type contextKey struct{}

// WithUser attaches the authenticated user to the context.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// FromContext returns the authenticated user, if any.
func FromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(contextKey{}).(*User)
	return user, ok && user != nil
}
