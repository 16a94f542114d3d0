package authtokensrepo

import "time"

// Token is the opaque bearer credential of a user. A user has at most one.
type Token struct {
	Key       string    `db:"key"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
