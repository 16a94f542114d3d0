package tasksrepo

import (
	"time"

	"github.com/jrazmi/join/sdk/validation"
)

// Priority ranks a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// State is the board column a task sits in.
type State string

const (
	StateToDo             State = "To Do"
	StateInProgress       State = "In Progress"
	StateAwaitingFeedback State = "Awaiting Feedback"
	StateDone             State = "Done"
)

// Task is a unit of work owned by its author.
type Task struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	AuthorID    int64     `db:"author_id"`
	CreatedAt   time.Time `db:"created_at"`
	Priority    Priority  `db:"priority"`
	DueDate     time.Time `db:"due_date"`
	State       State     `db:"state"`
}

// CreateTask holds the fields of a new task. Nil fields take their
// defaults; AuthorID is always the caller.
type CreateTask struct {
	Title       *string    `json:"title" validate:"required,notblank,max=100"`
	Description *string    `json:"description" validate:"required,notblank,max=500"`
	AuthorID    int64      `json:"author"`
	CreatedAt   *time.Time `json:"created_at"`
	Priority    *Priority  `json:"priority" validate:"omitnil,oneof=High Medium Low"`
	DueDate     *time.Time `json:"due_date"`
	State       *State     `json:"state" validate:"omitnil,oneof='To Do' 'In Progress' 'Awaiting Feedback' Done"`
}

// Validate reports every invalid field.
func (c CreateTask) Validate() validation.FieldErrors {
	return validation.Struct(c)
}

// task builds the row to insert, filling defaults relative to today.
func (c CreateTask) task(today time.Time) Task {
	t := Task{
		Title:       validation.GetStringOrEmpty(c.Title),
		Description: validation.GetStringOrEmpty(c.Description),
		AuthorID:    c.AuthorID,
		CreatedAt:   today,
		Priority:    PriorityLow,
		DueDate:     today,
		State:       StateToDo,
	}
	if c.CreatedAt != nil {
		t.CreatedAt = validation.DateOf(*c.CreatedAt)
	}
	if c.Priority != nil {
		t.Priority = *c.Priority
	}
	if c.DueDate != nil {
		t.DueDate = validation.DateOf(*c.DueDate)
	}
	if c.State != nil {
		t.State = *c.State
	}
	return t
}

// UpdateTask is a partial update: only non-nil fields change.
type UpdateTask struct {
	Title       *string    `json:"title" validate:"omitnil,notblank,max=100"`
	Description *string    `json:"description" validate:"omitnil,notblank,max=500"`
	AuthorID    *int64     `json:"author"`
	CreatedAt   *time.Time `json:"created_at"`
	Priority    *Priority  `json:"priority" validate:"omitnil,oneof=High Medium Low"`
	DueDate     *time.Time `json:"due_date"`
	State       *State     `json:"state" validate:"omitnil,oneof='To Do' 'In Progress' 'Awaiting Feedback' Done"`
}

// Validate reports every invalid field present in the patch.
func (u UpdateTask) Validate() validation.FieldErrors {
	return validation.Struct(u)
}

// Apply copies the present fields onto t.
func (u UpdateTask) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.AuthorID != nil {
		t.AuthorID = *u.AuthorID
	}
	if u.CreatedAt != nil {
		t.CreatedAt = validation.DateOf(*u.CreatedAt)
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		t.DueDate = validation.DateOf(*u.DueDate)
	}
	if u.State != nil {
		t.State = *u.State
	}
}
