package authbridge

import "github.com/jrazmi/join/bridge/scaffolding/payload"

type LoginInput struct {
	Username payload.Field `json:"username"`
	Password payload.Field `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

type RegisterInput struct {
	Username  payload.Field `json:"username"`
	Email     payload.Field `json:"email"`
	Password  payload.Field `json:"password"`
	FirstName payload.Field `json:"first_name"`
	LastName  payload.Field `json:"last_name"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CurrentUser struct {
	ID int64 `json:"id"`
}
