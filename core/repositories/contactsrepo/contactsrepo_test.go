package contactsrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/contactsrepo"
	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb/dbtest"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

func TestFullNameFollowsUpdates(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))
	ctx := context.Background()

	c, err := repos.Contacts.Create(ctx, contactsrepo.CreateContact{
		FirstName: validation.StringPtr("First Name"),
		LastName:  validation.StringPtr("Last Name"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := c.FullName(); got != "First Name Last Name" {
		t.Fatalf("FullName = %q", got)
	}

	updated, err := repos.Contacts.Update(ctx, c.ID, contactsrepo.UpdateContact{LastName: validation.StringPtr("Other")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := updated.FullName(); got != "First Name Other" {
		t.Fatalf("FullName after update = %q", got)
	}

	fetched, err := repos.Contacts.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := fetched.FullName(); got != "First Name Other" {
		t.Fatalf("FullName after Get = %q", got)
	}
}

func TestCreateValidation(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))

	_, err := repos.Contacts.Create(context.Background(), contactsrepo.CreateContact{
		FirstName: validation.StringPtr("  "),
	})

	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	if fe["first_name"][0] != validation.MsgBlank {
		t.Errorf("first_name = %v", fe["first_name"])
	}
	if fe["last_name"][0] != validation.MsgRequired {
		t.Errorf("last_name = %v", fe["last_name"])
	}
}

func TestDeleteUnknown(t *testing.T) {
	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))

	if err := repos.Contacts.Delete(context.Background(), 1); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
