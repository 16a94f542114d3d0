// Package usersrepo stores user accounts and their hashed credentials.
package usersrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/passwords"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// Storer is implemented by the pgx and sqlite stores. Create reports a
// violated unique constraint as ErrUsernameTaken or ErrEmailTaken.
type Storer interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, input CreateUser) (User, error)
}

// Repository provides access to user storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new User repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

func (r *Repository) List(ctx context.Context) ([]User, error) {
	records, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user repository list: %w", err)
	}
	return records, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (User, error) {
	record, err := r.storer.Get(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("user repository get: %w", err)
	}
	return record, nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (User, error) {
	record, err := r.storer.GetByUsername(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("user repository get by username: %w", err)
	}
	return record, nil
}

// Create hashes the password and stores a new account. A taken username is
// reported before a taken email. The lookups only order the errors; the
// unique constraints decide races between concurrent registrations.
func (r *Repository) Create(ctx context.Context, input NewUser) (User, error) {
	taken, err := r.storer.UsernameExists(ctx, input.Username)
	if err != nil {
		return User{}, fmt.Errorf("user repository create: %w", err)
	}
	if taken {
		return User{}, ErrUsernameTaken
	}

	taken, err = r.storer.EmailExists(ctx, input.Email)
	if err != nil {
		return User{}, fmt.Errorf("user repository create: %w", err)
	}
	if taken {
		return User{}, ErrEmailTaken
	}

	hash, err := passwords.Hash(input.Password)
	if err != nil {
		return User{}, fmt.Errorf("user repository create: %w", err)
	}

	user, err := r.storer.Create(ctx, CreateUser{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsStaff:      input.IsStaff,
		IsSuperuser:  input.IsSuperuser,
	})
	if err != nil {
		return User{}, fmt.Errorf("user repository create: %w", err)
	}

	r.log.InfoContext(ctx, "user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}
