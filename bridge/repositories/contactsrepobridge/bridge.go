package contactsrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/contactsrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

type bridge struct {
	log               *logger.Logger
	contactRepository *contactsrepo.Repository
}

func newBridge(log *logger.Logger, contactRepository *contactsrepo.Repository) *bridge {
	return &bridge{
		log:               log,
		contactRepository: contactRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	contacts, err := b.contactRepository.List(ctx)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(contacts))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input ContactInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Translate(err)
	}

	contact, err := b.contactRepository.Create(ctx, create)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(contact), http.StatusCreated)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "contact_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	contact, err := b.contactRepository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return web.NewJSONResponse([]Contact{})
		}
		return errs.Translate(err)
	}

	return web.NewJSONResponse([]Contact{MarshalToBridge(contact)})
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "contact_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	var input ContactInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	patch, err := MarshalUpdateToRepository(input)
	if err != nil {
		if _, getErr := b.contactRepository.Get(ctx, id); getErr != nil {
			return errs.Translate(getErr)
		}
		return errs.Translate(err)
	}

	contact, err := b.contactRepository.Update(ctx, id, patch)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalToBridge(contact))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "contact_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	if err := b.contactRepository.Delete(ctx, id); err != nil {
		return errs.Translate(err)
	}

	return nil
}
