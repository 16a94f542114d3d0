package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/bridge/scaffolding/mid"
	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/tasksrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	log            *logger.Logger
	taskRepository *tasksrepo.Repository
}

func newBridge(log *logger.Logger, taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		log:            log,
		taskRepository: taskRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.taskRepository.List(ctx)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

// httpCreate stores a task authored by the caller. An author in the body
// is ignored.
func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.Newf(errs.Unauthenticated, "Authentication credentials were not provided.")
	}

	var input TaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	create, err := MarshalCreateToRepository(input, user.ID)
	if err != nil {
		return errs.Translate(err)
	}

	task, err := b.taskRepository.Create(ctx, create)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

// httpGetByID answers with a list holding the task, or an empty list when
// it does not exist.
func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "task_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	task, err := b.taskRepository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return web.NewJSONResponse([]Task{})
		}
		return errs.Translate(err)
	}

	return web.NewJSONResponse([]Task{MarshalToBridge(task)})
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "task_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	var input TaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	patch, err := MarshalUpdateToRepository(input)
	if err != nil {
		// A missing task is reported before a malformed body.
		if _, getErr := b.taskRepository.Get(ctx, id); getErr != nil {
			return errs.Translate(getErr)
		}
		return errs.Translate(err)
	}

	task, err := b.taskRepository.Update(ctx, id, patch)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "task_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	if err := b.taskRepository.Delete(ctx, id); err != nil {
		return errs.Translate(err)
	}

	return nil
}
