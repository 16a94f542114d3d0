package tasksrepo_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/core/repositories/subtasksrepo"
	"github.com/jrazmi/join/core/repositories/tasksrepo"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb/dbtest"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

func setup(t *testing.T) (reposet.Set, usersrepo.User) {
	t.Helper()

	repos := reposet.NewSQLite(logger.NewDiscard(), dbtest.New(t))
	user, err := repos.Users.Create(context.Background(), usersrepo.NewUser{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "p",
	})
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return repos, user
}

func newTask(authorID int64) tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Title:       validation.StringPtr("Write report"),
		Description: validation.StringPtr("Quarterly numbers"),
		AuthorID:    authorID,
	}
}

func TestCreateDefaults(t *testing.T) {
	repos, user := setup(t)

	task, err := repos.Tasks.Create(context.Background(), newTask(user.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if task.Priority != tasksrepo.PriorityLow {
		t.Errorf("priority = %q, want Low", task.Priority)
	}
	if task.State != tasksrepo.StateToDo {
		t.Errorf("state = %q, want To Do", task.State)
	}
	today := validation.Today()
	if !task.CreatedAt.Equal(today) || !task.DueDate.Equal(today) {
		t.Errorf("dates = %v / %v, want %v", task.CreatedAt, task.DueDate, today)
	}
	if task.AuthorID != user.ID {
		t.Errorf("author = %d, want %d", task.AuthorID, user.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	repos, user := setup(t)
	bad := tasksrepo.Priority("Urgent")
	state := tasksrepo.State("Blocked")

	tests := []struct {
		name   string
		input  tasksrepo.CreateTask
		fields []string
	}{
		{
			name:   "missing title and description",
			input:  tasksrepo.CreateTask{AuthorID: user.ID},
			fields: []string{"title", "description"},
		},
		{
			name: "too long",
			input: tasksrepo.CreateTask{
				Title:       validation.StringPtr(strings.Repeat("t", 101)),
				Description: validation.StringPtr(strings.Repeat("d", 501)),
				AuthorID:    user.ID,
			},
			fields: []string{"title", "description"},
		},
		{
			name: "bad choices",
			input: tasksrepo.CreateTask{
				Title:       validation.StringPtr("t"),
				Description: validation.StringPtr("d"),
				AuthorID:    user.ID,
				Priority:    &bad,
				State:       &state,
			},
			fields: []string{"priority", "state"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repos.Tasks.Create(context.Background(), tt.input)

			var fe validation.FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want FieldErrors", err)
			}
			if len(fe) != len(tt.fields) {
				t.Fatalf("fields = %v, want %v", fe, tt.fields)
			}
			for _, f := range tt.fields {
				if len(fe[f]) == 0 {
					t.Errorf("missing error for %s in %v", f, fe)
				}
			}
		})
	}

	tasks, err := repos.Tasks.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("invalid input stored %d tasks", len(tasks))
	}
}

func TestCreateUnknownAuthor(t *testing.T) {
	repos, _ := setup(t)

	_, err := repos.Tasks.Create(context.Background(), newTask(404))

	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	if got := fe["author"]; len(got) != 1 || got[0] != `Invalid pk "404" - object does not exist.` {
		t.Fatalf("author errors = %v", got)
	}
}

func TestUpdatePartial(t *testing.T) {
	repos, user := setup(t)
	ctx := context.Background()

	task, err := repos.Tasks.Create(ctx, newTask(user.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	state := tasksrepo.StateInProgress
	due := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
	updated, err := repos.Tasks.Update(ctx, task.ID, tasksrepo.UpdateTask{State: &state, DueDate: &due})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.State != tasksrepo.StateInProgress {
		t.Errorf("state = %q", updated.State)
	}
	if !updated.DueDate.Equal(due) {
		t.Errorf("due = %v, want %v", updated.DueDate, due)
	}
	if updated.Title != task.Title || updated.Description != task.Description || updated.Priority != task.Priority {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateRejectsBeforeMutation(t *testing.T) {
	repos, user := setup(t)
	ctx := context.Background()

	task, err := repos.Tasks.Create(ctx, newTask(user.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bad := tasksrepo.Priority("Urgent")
	_, err = repos.Tasks.Update(ctx, task.ID, tasksrepo.UpdateTask{
		Title:    validation.StringPtr("changed"),
		Priority: &bad,
	})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}

	got, err := repos.Tasks.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != task.Title {
		t.Fatalf("title = %q, want unchanged %q", got.Title, task.Title)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repos, _ := setup(t)

	state := tasksrepo.StateDone
	_, err := repos.Tasks.Update(context.Background(), 99, tasksrepo.UpdateTask{State: &state})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesSubTasks(t *testing.T) {
	repos, user := setup(t)
	ctx := context.Background()

	task, err := repos.Tasks.Create(ctx, newTask(user.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, title := range []string{"one", "two"} {
		_, err := repos.SubTasks.Create(ctx, subtasksrepo.CreateSubTask{
			Title:  validation.StringPtr(title),
			TaskID: &task.ID,
		})
		if err != nil {
			t.Fatalf("Create subtask: %v", err)
		}
	}

	if err := repos.Tasks.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repos.SubTasks.ListByTask(ctx, task.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("ListByTask err = %v, want ErrNotFound", err)
	}
	all, err := repos.SubTasks.List(ctx)
	if err != nil {
		t.Fatalf("List subtasks: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("%d subtasks survived the delete", len(all))
	}

	if err := repos.Tasks.Delete(ctx, task.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}
