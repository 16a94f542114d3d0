package usersrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// bridge provides HTTP handlers for User operations.
type bridge struct {
	log            *logger.Logger
	userRepository *usersrepo.Repository
}

func newBridge(log *logger.Logger, userRepository *usersrepo.Repository) *bridge {
	return &bridge{
		log:            log,
		userRepository: userRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	users, err := b.userRepository.List(ctx)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(users))
}
