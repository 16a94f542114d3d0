package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/jrazmi/join/core/usecases/authusecase"
	"github.com/jrazmi/join/sdk/logger"
)

// CreateAdmin creates a staff superuser from
// "create-admin [-first name] [-last name] <username> <email> <password>".
func CreateAdmin(ctx context.Context, log *logger.Logger, args []string, store Store) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	firstName := fs.String("first", "", "first name")
	lastName := fs.String("last", "", "last name")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ErrHelp
		}
		return fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() != 3 {
		fmt.Println("usage: create-admin [-first name] [-last name] <username> <email> <password>")
		return ErrHelp
	}

	repos := store.Repositories(log)
	auth := authusecase.NewUseCase(log, repos.Users, repos.Tokens)

	user, err := auth.CreateAdmin(ctx, authusecase.RegisterInput{
		Username:  fs.Arg(0),
		Email:     fs.Arg(1),
		Password:  fs.Arg(2),
		FirstName: *firstName,
		LastName:  *lastName,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.InfoContext(ctx, "admin created", "user_id", user.ID, "username", user.Username)
	return nil
}
