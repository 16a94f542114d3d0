package subtasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/join/bridge/scaffolding/errs"
	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/subtasksrepo"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
)

type bridge struct {
	log               *logger.Logger
	subTaskRepository *subtasksrepo.Repository
}

func newBridge(log *logger.Logger, subTaskRepository *subtasksrepo.Repository) *bridge {
	return &bridge{
		log:               log,
		subTaskRepository: subTaskRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	subtasks, err := b.subTaskRepository.List(ctx)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(subtasks))
}

// httpListByTask answers 404 when the task has no subtasks.
func (b *bridge) httpListByTask(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := web.ParamInt64(r, "task_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	subtasks, err := b.subTaskRepository.ListByTask(ctx, taskID)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(subtasks))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input SubTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Translate(err)
	}

	st, err := b.subTaskRepository.Create(ctx, create)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(st), http.StatusCreated)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "subtask_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	st, err := b.subTaskRepository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return web.NewJSONResponse([]SubTask{})
		}
		return errs.Translate(err)
	}

	return web.NewJSONResponse([]SubTask{MarshalToBridge(st)})
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "subtask_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	var input SubTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	patch, err := MarshalUpdateToRepository(input)
	if err != nil {
		if _, getErr := b.subTaskRepository.Get(ctx, id); getErr != nil {
			return errs.Translate(getErr)
		}
		return errs.Translate(err)
	}

	st, err := b.subTaskRepository.Update(ctx, id, patch)
	if err != nil {
		return errs.Translate(err)
	}

	return web.NewJSONResponse(MarshalToBridge(st))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "subtask_id")
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	if err := b.subTaskRepository.Delete(ctx, id); err != nil {
		return errs.Translate(err)
	}

	return nil
}
