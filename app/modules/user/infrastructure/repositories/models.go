package userdb

import (
	"time"

	"github.com/uptrace/bun"

	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// User is the persisted account row.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID                 int64           `bun:"id,pk,autoincrement"`
	Username           string          `bun:"username,notnull,unique"`
	HashedPassword     string          `bun:"hashed_password,notnull"`
	Role               userdomain.Role `bun:"role,notnull,default:'player'"`
	MustChangePassword bool            `bun:"must_change_password,notnull,default:false"`
	CreatedAt          time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain maps the row to the shared account type attached to requests.
func (u *User) ToDomain() *userdomain.User {
	return &userdomain.User{
		ID:                 u.ID,
		Username:           u.Username,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
	}
}
