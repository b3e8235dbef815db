package task

// ExecuteInput is one raw command line.
type ExecuteInput struct {
	Input string
}

// ExecuteOutput is the outcome of a successfully interpreted line.
type ExecuteOutput struct {
	Response  string
	Mutated   bool
	Intent    string
	TaskCount int
}

// TaskItem is one task of a list snapshot.
type TaskItem struct {
	Index       int    `json:"index"` // 1-based
	Type        string `json:"type"`
	Done        bool   `json:"done"`
	Description string `json:"description"`
	When        string `json:"when,omitempty"`
}

// ListOutput is a snapshot of the whole list.
type ListOutput struct {
	Tasks []TaskItem `json:"tasks"`
	Count int        `json:"count"`
}

// Task type names used in snapshots.
const (
	TypeTodo     = "todo"
	TypeDeadline = "deadline"
	TypeEvent    = "event"
	TypeTask     = "task"
)
