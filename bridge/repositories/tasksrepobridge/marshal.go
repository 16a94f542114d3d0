package tasksrepobridge

import (
	"github.com/jrazmi/join/bridge/scaffolding/payload"
	"github.com/jrazmi/join/core/repositories/tasksrepo"
	"github.com/jrazmi/join/sdk/validation"
)

func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   validation.FormatDate(task.CreatedAt),
		Priority:    string(task.Priority),
		DueDate:     validation.FormatDate(task.DueDate),
		State:       string(task.State),
		Author:      task.AuthorID,
	}
}

// MarshalListToBridge converts a list of core models to bridge models
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository
// input authored by authorID. Undecodable and invalid fields are reported
// together as validation.FieldErrors.
func MarshalCreateToRepository(input TaskInput, authorID int64) (tasksrepo.CreateTask, error) {
	fe := validation.FieldErrors{}

	create := tasksrepo.CreateTask{
		Title:       payload.String(fe, "title", input.Title),
		Description: payload.String(fe, "description", input.Description),
		AuthorID:    authorID,
		CreatedAt:   payload.Date(fe, "created_at", input.CreatedAt),
		Priority:    payload.Choice[tasksrepo.Priority](fe, "priority", input.Priority),
		DueDate:     payload.Date(fe, "due_date", input.DueDate),
		State:       payload.Choice[tasksrepo.State](fe, "state", input.State),
	}

	fe.Merge(create.Validate())
	return create, fe.Err()
}

// MarshalUpdateToRepository converts bridge update input to a partial
// repository update.
func MarshalUpdateToRepository(input TaskInput) (tasksrepo.UpdateTask, error) {
	fe := validation.FieldErrors{}

	patch := tasksrepo.UpdateTask{
		Title:       payload.String(fe, "title", input.Title),
		Description: payload.String(fe, "description", input.Description),
		AuthorID:    payload.PK(fe, "author", input.Author),
		CreatedAt:   payload.Date(fe, "created_at", input.CreatedAt),
		Priority:    payload.Choice[tasksrepo.Priority](fe, "priority", input.Priority),
		DueDate:     payload.Date(fe, "due_date", input.DueDate),
		State:       payload.Choice[tasksrepo.State](fe, "state", input.State),
	}

	fe.Merge(patch.Validate())
	return patch, fe.Err()
}
