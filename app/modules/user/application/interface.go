package userservice

import (
	"context"

	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// TokenResponse is the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Service manages accounts and access tokens.
type Service interface {
	// Register creates a player account and returns its first token.
	Register(ctx context.Context, username, password string) (*TokenResponse, error)
	// Login verifies credentials and returns a token. Failed attempts are
	// audit-logged.
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	// Authenticate resolves a bearer token to the account it names.
	Authenticate(ctx context.Context, token string) (*userdomain.User, error)
	// Promote grants the admin role to the named user.
	Promote(ctx context.Context, admin *userdomain.User, username string) (*userdomain.User, error)
	// ChangePassword verifies the current password, stores the new hash
	// and clears the force-change flag.
	ChangePassword(ctx context.Context, user *userdomain.User, oldPassword, newPassword string) error
	// CountUsers returns the total number of accounts.
	CountUsers(ctx context.Context) (int, error)
}
