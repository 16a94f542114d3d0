package usersrepobridge

import "github.com/jrazmi/join/core/repositories/usersrepo"

// User is the public form of an account. The password hash and the
// permission flags are never exposed.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func MarshalToBridge(u usersrepo.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func MarshalListToBridge(users []usersrepo.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = MarshalToBridge(u)
	}
	return out
}
