package subtasksrepobridge

import "github.com/jrazmi/join/bridge/scaffolding/payload"

// SubTask is the wire form of a subtask. The done flag keeps the
// camel case name clients already use.
type SubTask struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	IsDone    bool   `json:"isDone"`
	Task      int64  `json:"task"`
}

type SubTaskInput struct {
	Title     payload.Field `json:"title"`
	CreatedAt payload.Field `json:"created_at"`
	IsDone    payload.Field `json:"isDone"`
	Task      payload.Field `json:"task"`
}
