// Package authusecase issues and resolves bearer tokens and registers new
// accounts.
package authusecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/authtokensrepo"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/passwords"
	"github.com/jrazmi/join/sdk/validation"
)

var (
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrFieldsRequired     = errors.New("all fields are required")
)

// LoginInput carries the credentials of a login request. Nil means the
// field was absent.
type LoginInput struct {
	Username *string
	Password *string
}

type LoginResult struct {
	Token  string
	UserID int64
	Email  string
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UseCase struct {
	log    *logger.Logger
	users  *usersrepo.Repository
	tokens *authtokensrepo.Repository
}

func NewUseCase(log *logger.Logger, users *usersrepo.Repository, tokens *authtokensrepo.Repository) *UseCase {
	return &UseCase{
		log:    log,
		users:  users,
		tokens: tokens,
	}
}

// Login verifies the credentials and returns the user's token, creating it
// on the first login. Repeated logins return the same token.
func (u *UseCase) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	fe := validation.FieldErrors{}
	checkCredential(fe, "username", input.Username)
	checkCredential(fe, "password", input.Password)
	if err := fe.Err(); err != nil {
		return LoginResult{}, err
	}

	user, err := u.users.GetByUsername(ctx, *input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	if err := passwords.Compare(user.PasswordHash, *input.Password); err != nil {
		if errors.Is(err, passwords.ErrMismatch) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	token, err := u.tokens.GetOrCreate(ctx, user.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	return LoginResult{
		Token:  token.Key,
		UserID: user.ID,
		Email:  user.Email,
	}, nil
}

func checkCredential(fe validation.FieldErrors, field string, value *string) {
	switch {
	case value == nil:
		fe.Add(field, validation.MsgRequired)
	case *value == "":
		fe.Add(field, validation.MsgBlank)
	}
}

// Resolve returns the user a token belongs to. Empty, malformed and unknown
// tokens all fail with ErrInvalidToken.
func (u *UseCase) Resolve(ctx context.Context, key string) (usersrepo.User, error) {
	if !authtokensrepo.ValidKey(key) {
		return usersrepo.User{}, ErrInvalidToken
	}

	token, err := u.tokens.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return usersrepo.User{}, ErrInvalidToken
		}
		return usersrepo.User{}, fmt.Errorf("resolve token: %w", err)
	}

	user, err := u.users.Get(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return usersrepo.User{}, ErrInvalidToken
		}
		return usersrepo.User{}, fmt.Errorf("resolve token: %w", err)
	}
	return user, nil
}

// Register creates an account. It does not log the user in.
func (u *UseCase) Register(ctx context.Context, input RegisterInput) (usersrepo.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return usersrepo.User{}, ErrFieldsRequired
	}

	user, err := u.users.Create(ctx, usersrepo.NewUser{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return usersrepo.User{}, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// CreateAdmin creates a staff superuser account.
func (u *UseCase) CreateAdmin(ctx context.Context, input RegisterInput) (usersrepo.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return usersrepo.User{}, ErrFieldsRequired
	}

	user, err := u.users.Create(ctx, usersrepo.NewUser{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		IsStaff:     true,
		IsSuperuser: true,
	})
	if err != nil {
		return usersrepo.User{}, fmt.Errorf("create admin: %w", err)
	}
	return user, nil
}
