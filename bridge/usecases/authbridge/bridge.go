package authbridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/bridge/scaffolding/mid"
	"github.com/jrazmi/join/bridge/scaffolding/payload"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/core/usecases/authusecase"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

const (
	msgBadCredentials = "Unable to log in with provided credentials."
	msgFieldsRequired = "All fields are required."
	msgUsernameTaken  = "Username already exists."
	msgEmailTaken     = "Email already exists."
	msgUserCreated    = "User created successfully."
)

type bridge struct {
	log     *logger.Logger
	useCase *authusecase.UseCase
}

func newBridge(log *logger.Logger, useCase *authusecase.UseCase) *bridge {
	return &bridge{
		log:     log,
		useCase: useCase,
	}
}

func (b *bridge) httpLogin(ctx context.Context, r *http.Request) web.Encoder {
	var input LoginInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	fe := validation.FieldErrors{}
	creds := authusecase.LoginInput{
		Username: payload.String(fe, "username", input.Username),
		Password: payload.String(fe, "password", input.Password),
	}
	if len(fe) > 0 {
		return errs.NewFieldErrors(fe)
	}

	result, err := b.useCase.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, authusecase.ErrInvalidCredentials) {
			fe.Add("non_field_errors", msgBadCredentials)
			return errs.NewFieldErrors(fe)
		}
		return errs.Translate(err)
	}

	return web.NewJSONResponse(LoginResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Email:  result.Email,
	})
}

// httpRegister creates an account without logging it in.
func (b *bridge) httpRegister(ctx context.Context, r *http.Request) web.Encoder {
	var input RegisterInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	// Malformed values count as missing.
	fe := validation.FieldErrors{}
	reg := authusecase.RegisterInput{
		Username:  validation.GetStringOrEmpty(payload.String(fe, "username", input.Username)),
		Email:     validation.GetStringOrEmpty(payload.String(fe, "email", input.Email)),
		Password:  validation.GetStringOrEmpty(payload.String(fe, "password", input.Password)),
		FirstName: validation.GetStringOrEmpty(payload.String(fe, "first_name", input.FirstName)),
		LastName:  validation.GetStringOrEmpty(payload.String(fe, "last_name", input.LastName)),
	}

	if _, err := b.useCase.Register(ctx, reg); err != nil {
		switch {
		case errors.Is(err, authusecase.ErrFieldsRequired):
			return errs.Newf(errs.InvalidArgument, msgFieldsRequired)
		case errors.Is(err, usersrepo.ErrUsernameTaken):
			return errs.Newf(errs.AlreadyExists, msgUsernameTaken)
		case errors.Is(err, usersrepo.ErrEmailTaken):
			return errs.Newf(errs.AlreadyExists, msgEmailTaken)
		}
		return errs.Translate(err)
	}

	return web.NewJSONResponseWithStatus(MessageResponse{Message: msgUserCreated}, http.StatusCreated)
}

func (b *bridge) httpCurrentUser(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Authentication credentials were not provided.")
	}

	return web.NewJSONResponse(CurrentUser{ID: user.ID})
}
