package subtasksrepobridge

import (
	"github.com/jrazmi/join/bridge/scaffolding/payload"
	"github.com/jrazmi/join/core/repositories/subtasksrepo"
	"github.com/jrazmi/join/sdk/validation"
)

func MarshalToBridge(st subtasksrepo.SubTask) SubTask {
	return SubTask{
		ID:        st.ID,
		Title:     st.Title,
		CreatedAt: validation.FormatDate(st.CreatedAt),
		IsDone:    st.IsDone,
		Task:      st.TaskID,
	}
}

func MarshalListToBridge(subtasks []subtasksrepo.SubTask) []SubTask {
	out := make([]SubTask, len(subtasks))
	for i, st := range subtasks {
		out[i] = MarshalToBridge(st)
	}
	return out
}

func MarshalCreateToRepository(input SubTaskInput) (subtasksrepo.CreateSubTask, error) {
	fe := validation.FieldErrors{}

	create := subtasksrepo.CreateSubTask{
		Title:     payload.String(fe, "title", input.Title),
		CreatedAt: payload.Date(fe, "created_at", input.CreatedAt),
		IsDone:    payload.Bool(fe, "isDone", input.IsDone),
		TaskID:    payload.PK(fe, "task", input.Task),
	}

	fe.Merge(create.Validate())
	return create, fe.Err()
}

func MarshalUpdateToRepository(input SubTaskInput) (subtasksrepo.UpdateSubTask, error) {
	fe := validation.FieldErrors{}

	patch := subtasksrepo.UpdateSubTask{
		Title:     payload.String(fe, "title", input.Title),
		CreatedAt: payload.Date(fe, "created_at", input.CreatedAt),
		IsDone:    payload.Bool(fe, "isDone", input.IsDone),
		TaskID:    payload.PK(fe, "task", input.Task),
	}

	fe.Merge(patch.Validate())
	return patch, fe.Err()
}
