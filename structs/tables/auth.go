package tables

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	tableName    struct{}  `bun:"table:users,alias:u"`
	Id           uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Email        string    `json:"email" bun:"email,unique,notnull"`
	PasswordHash string    `json:"-" bun:"password_hash,notnull"`
	LastLogin    time.Time `json:"last_login" bun:"last_login,default:now()"`
	CreatedAt    time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}

// Admin marks a user as a member of the admin set. Rows are provisioned out
// of band; this application only ever checks membership.
type Admin struct {
	tableName struct{}  `bun:"table:admins,alias:adm"`
	UserId    uuid.UUID `json:"user_id" bun:"user_id,pk,type:uuid"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}
