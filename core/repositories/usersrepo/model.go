package usersrepo

import "time"

// User is a stored credential record. PasswordHash never leaves the
// repository layer in responses.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	IsStaff      bool      `db:"is_staff"`
	IsSuperuser  bool      `db:"is_superuser"`
	DateJoined   time.Time `db:"date_joined"`
}

// NewUser is the input for creating an account. Password is plaintext and
// is hashed before it reaches a store.
type NewUser struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	IsStaff     bool
	IsSuperuser bool
}

// CreateUser is what a store inserts.
type CreateUser struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsStaff      bool
	IsSuperuser  bool
}
