package userjwt

import (
	"time"

	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// Provider signs and validates access tokens.
type Provider interface {
	// GenerateToken creates a signed token from the given claims.
	GenerateToken(claims *userdomain.Claims, ttl time.Duration) (string, error)
	// ValidateToken validates a token and returns the claims if valid.
	ValidateToken(tokenString string) (*userdomain.Claims, error)
}
