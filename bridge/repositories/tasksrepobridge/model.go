package tasksrepobridge

import "github.com/jrazmi/join/bridge/scaffolding/payload"

// Task is the wire form of a task. Dates are YYYY-MM-DD.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	State       string `json:"state"`
	Author      int64  `json:"author"`
}

// TaskInput is the body of a create or partial update. Fields are kept
// raw so absent, null and string encoded values can be told apart.
type TaskInput struct {
	Title       payload.Field `json:"title"`
	Description payload.Field `json:"description"`
	CreatedAt   payload.Field `json:"created_at"`
	Priority    payload.Field `json:"priority"`
	DueDate     payload.Field `json:"due_date"`
	State       payload.Field `json:"state"`
	Author      payload.Field `json:"author"`
}
