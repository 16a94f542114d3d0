// Package subtasksrepo stores subtasks. Every subtask references an
// existing task.
package subtasksrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

type Storer interface {
	List(ctx context.Context) ([]SubTask, error)
	ListByTask(ctx context.Context, taskID int64) ([]SubTask, error)
	Get(ctx context.Context, id int64) (SubTask, error)
	Create(ctx context.Context, st SubTask) (SubTask, error)
	Update(ctx context.Context, id int64, patch UpdateSubTask) (SubTask, error)
	Delete(ctx context.Context, id int64) error
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

func (r *Repository) List(ctx context.Context) ([]SubTask, error) {
	subtasks, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("subtask repository list: %w", err)
	}
	return subtasks, nil
}

// ListByTask returns the subtasks of a task. A task without subtasks, or
// an unknown task, is reported as repositories.ErrNotFound.
func (r *Repository) ListByTask(ctx context.Context, taskID int64) ([]SubTask, error) {
	subtasks, err := r.storer.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("subtask repository list by task: %w", err)
	}
	if len(subtasks) == 0 {
		return nil, fmt.Errorf("subtask repository list by task %d: %w", taskID, repositories.ErrNotFound)
	}
	return subtasks, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (SubTask, error) {
	st, err := r.storer.Get(ctx, id)
	if err != nil {
		return SubTask{}, fmt.Errorf("subtask repository get: %w", err)
	}
	return st, nil
}

// Create validates input and stores the subtask. A task id that does not
// exist is a field error on "task".
func (r *Repository) Create(ctx context.Context, input CreateSubTask) (SubTask, error) {
	if err := input.Validate().Err(); err != nil {
		return SubTask{}, err
	}

	st, err := r.storer.Create(ctx, input.subTask(validation.Today()))
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return SubTask{}, taskError(*input.TaskID)
		}
		return SubTask{}, fmt.Errorf("subtask repository create: %w", err)
	}

	r.log.InfoContext(ctx, "subtask created", "subtask_id", st.ID, "task_id", st.TaskID)
	return st, nil
}

func (r *Repository) Update(ctx context.Context, id int64, patch UpdateSubTask) (SubTask, error) {
	if err := patch.Validate().Err(); err != nil {
		return SubTask{}, err
	}

	st, err := r.storer.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) && patch.TaskID != nil {
			return SubTask{}, taskError(*patch.TaskID)
		}
		return SubTask{}, fmt.Errorf("subtask repository update: %w", err)
	}
	return st, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("subtask repository delete: %w", err)
	}
	return nil
}

func taskError(id int64) validation.FieldErrors {
	fe := validation.FieldErrors{}
	fe.Add("task", validation.InvalidPKMsg(strconv.FormatInt(id, 10)))
	return fe
}
