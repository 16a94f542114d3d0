// Package tasksrepo stores tasks. Deleting a task deletes its subtasks in
// the same transaction.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

// Storer defines the data storage interface for Task.
type Storer interface {
	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id int64) (Task, error)
	Create(ctx context.Context, task Task) (Task, error)
	// Update loads the task, applies patch and writes it back in one
	// transaction.
	Update(ctx context.Context, id int64, patch UpdateTask) (Task, error)
	// Delete removes the task's subtasks and then the task in one
	// transaction.
	Delete(ctx context.Context, id int64) error
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns every task of every author, oldest first.
func (r *Repository) List(ctx context.Context) ([]Task, error) {
	tasks, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("task repository list: %w", err)
	}
	return tasks, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Task, error) {
	task, err := r.storer.Get(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("task repository get: %w", err)
	}
	return task, nil
}

// Create validates input and stores the task. Invalid input is returned as
// validation.FieldErrors.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	if err := input.Validate().Err(); err != nil {
		return Task{}, err
	}

	task, err := r.storer.Create(ctx, input.task(validation.Today()))
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return Task{}, authorError(input.AuthorID)
		}
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", task.ID, "author_id", task.AuthorID)
	return task, nil
}

// Update validates patch before touching the store, then applies it.
func (r *Repository) Update(ctx context.Context, id int64, patch UpdateTask) (Task, error) {
	if err := patch.Validate().Err(); err != nil {
		return Task{}, err
	}

	task, err := r.storer.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) && patch.AuthorID != nil {
			return Task{}, authorError(*patch.AuthorID)
		}
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}
	return task, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("task repository delete: %w", err)
	}

	r.log.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}

func authorError(id int64) validation.FieldErrors {
	fe := validation.FieldErrors{}
	fe.Add("author", validation.InvalidPKMsg(strconv.FormatInt(id, 10)))
	return fe
}
