package authtokensrepo_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/authtokensrepo"
	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb/dbtest"
	"github.com/jrazmi/join/sdk/logger"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))
	ctx := context.Background()

	user, err := repos.Users.Create(ctx, usersrepo.NewUser{Username: "ada", Email: "ada@example.com", Password: "p"})
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	first, err := repos.Tokens.GetOrCreate(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !authtokensrepo.ValidKey(first.Key) {
		t.Fatalf("key %q is not 40 hex characters", first.Key)
	}

	second, err := repos.Tokens.GetOrCreate(ctx, user.ID)
	if err != nil {
		t.Fatalf("second GetOrCreate: %v", err)
	}
	if second.Key != first.Key {
		t.Fatalf("second key = %s, want %s", second.Key, first.Key)
	}

	got, err := repos.Tokens.Get(ctx, first.Key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != user.ID {
		t.Fatalf("token user = %d, want %d", got.UserID, user.ID)
	}
}

func TestGetUnknownKey(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))

	_, err := repos.Tokens.Get(context.Background(), strings.Repeat("a", authtokensrepo.KeyLength))
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: strings.Repeat("0a", 20), want: true},
		{key: "", want: false},
		{key: strings.Repeat("a", 39), want: false},
		{key: strings.Repeat("A", 40), want: false},
		{key: strings.Repeat("g", 40), want: false},
	}

	for _, tt := range tests {
		if got := authtokensrepo.ValidKey(tt.key); got != tt.want {
			t.Errorf("ValidKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
