package usersrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/core/repositories/usersrepo/stores/userssqlitestore"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb/dbtest"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/passwords"
)

func TestCreateHashesPassword(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))
	ctx := context.Background()

	user, err := repos.Users.Create(ctx, usersrepo.NewUser{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if user.PasswordHash == "secret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if err := passwords.Compare(user.PasswordHash, "secret-pass"); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if user.DateJoined.IsZero() {
		t.Fatal("expected date joined to be set")
	}

	got, err := repos.Users.GetByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != user.ID || got.Email != "ada@example.com" {
		t.Fatalf("GetByUsername = %+v", got)
	}
}

func TestCreateConflicts(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))
	ctx := context.Background()

	if _, err := repos.Users.Create(ctx, usersrepo.NewUser{Username: "ada", Email: "ada@example.com", Password: "p"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name  string
		input usersrepo.NewUser
		want  error
	}{
		{
			name:  "username taken with novel email",
			input: usersrepo.NewUser{Username: "ada", Email: "new@example.com", Password: "p"},
			want:  usersrepo.ErrUsernameTaken,
		},
		{
			name:  "email taken with novel username",
			input: usersrepo.NewUser{Username: "grace", Email: "ada@example.com", Password: "p"},
			want:  usersrepo.ErrEmailTaken,
		},
		{
			name:  "both taken reports username",
			input: usersrepo.NewUser{Username: "ada", Email: "ada@example.com", Password: "p"},
			want:  usersrepo.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repos.Users.Create(ctx, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStoreMapsUniqueConstraints(t *testing.T) {
	store := userssqlitestore.NewStore(logger.NewDiscard(), dbtest.New(t))
	ctx := context.Background()

	first := usersrepo.CreateUser{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	if _, err := store.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := store.Create(ctx, usersrepo.CreateUser{Username: "ada", Email: "other@example.com", PasswordHash: "x"})
	if !errors.Is(err, usersrepo.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}

	_, err = store.Create(ctx, usersrepo.CreateUser{Username: "grace", Email: "ada@example.com", PasswordHash: "x"})
	if !errors.Is(err, usersrepo.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestList(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))
	ctx := context.Background()

	for _, name := range []string{"ada", "grace"} {
		if _, err := repos.Users.Create(ctx, usersrepo.NewUser{Username: name, Email: name + "@example.com", Password: "p"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	users, err := repos.Users.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 || users[0].Username != "ada" || users[1].Username != "grace" {
		t.Fatalf("List = %+v", users)
	}
}
