// Package authtokensrepo stores the bearer tokens issued on login.
package authtokensrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/join/sdk/cryptids"
	"github.com/jrazmi/join/sdk/logger"
)

// KeyLength is the number of lowercase hex characters in a token key.
const KeyLength = 40

// Storer is implemented by the pgx and sqlite stores.
type Storer interface {
	// GetOrCreate inserts a token with key for userID unless the user
	// already has one, and returns whichever token is stored.
	GetOrCreate(ctx context.Context, userID int64, key string) (Token, error)
	GetByKey(ctx context.Context, key string) (Token, error)
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// GetOrCreate returns the user's token, issuing one on first use.
func (r *Repository) GetOrCreate(ctx context.Context, userID int64) (Token, error) {
	key, err := cryptids.GenerateHex(KeyLength)
	if err != nil {
		return Token{}, fmt.Errorf("token repository generate key: %w", err)
	}

	token, err := r.storer.GetOrCreate(ctx, userID, key)
	if err != nil {
		return Token{}, fmt.Errorf("token repository get or create: %w", err)
	}

	if token.Key == key {
		r.log.InfoContext(ctx, "token issued", "user_id", userID)
	}
	return token, nil
}

// Get looks up a token by key.
func (r *Repository) Get(ctx context.Context, key string) (Token, error) {
	token, err := r.storer.GetByKey(ctx, key)
	if err != nil {
		return Token{}, fmt.Errorf("token repository get: %w", err)
	}
	return token, nil
}

// ValidKey reports whether key has the shape of an issued token.
func ValidKey(key string) bool {
	if len(key) != KeyLength {
		return false
	}
	for _, c := range key {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
