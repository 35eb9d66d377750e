package userdomain

import "time"

// Claims is the authenticated identity carried by an access token.
type Claims struct {
	Username  string
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}
