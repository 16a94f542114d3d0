package subtasksrepo

import (
	"time"

	"github.com/jrazmi/join/sdk/validation"
)

// SubTask is a checklist item of a task.
type SubTask struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	IsDone    bool      `db:"is_done"`
	TaskID    int64     `db:"task_id"`
}

// CreateSubTask holds the fields of a new subtask. TaskID is required.
type CreateSubTask struct {
	Title     *string    `json:"title" validate:"required,notblank,max=100"`
	CreatedAt *time.Time `json:"created_at"`
	IsDone    *bool      `json:"isDone"`
	TaskID    *int64     `json:"task" validate:"required"`
}

func (c CreateSubTask) Validate() validation.FieldErrors {
	return validation.Struct(c)
}

func (c CreateSubTask) subTask(today time.Time) SubTask {
	st := SubTask{
		Title:     validation.GetStringOrEmpty(c.Title),
		CreatedAt: today,
		IsDone:    validation.GetBoolOrFalse(c.IsDone),
	}
	if c.CreatedAt != nil {
		st.CreatedAt = validation.DateOf(*c.CreatedAt)
	}
	if c.TaskID != nil {
		st.TaskID = *c.TaskID
	}
	return st
}

// UpdateSubTask is a partial update: only non-nil fields change.
type UpdateSubTask struct {
	Title     *string    `json:"title" validate:"omitnil,notblank,max=100"`
	CreatedAt *time.Time `json:"created_at"`
	IsDone    *bool      `json:"isDone"`
	TaskID    *int64     `json:"task"`
}

func (u UpdateSubTask) Validate() validation.FieldErrors {
	return validation.Struct(u)
}

// Apply copies the present fields onto st.
func (u UpdateSubTask) Apply(st *SubTask) {
	if u.Title != nil {
		st.Title = *u.Title
	}
	if u.CreatedAt != nil {
		st.CreatedAt = validation.DateOf(*u.CreatedAt)
	}
	if u.IsDone != nil {
		st.IsDone = *u.IsDone
	}
	if u.TaskID != nil {
		st.TaskID = *u.TaskID
	}
}
