package command

// Intent is the command an input line was classified as.
type Intent string

const (
	IntentList     Intent = "LIST"
	IntentDone     Intent = "DONE"
	IntentDelete   Intent = "DELETE"
	IntentFind     Intent = "FIND"
	IntentDeadline Intent = "DEADLINE"
	IntentEvent    Intent = "EVENT"
	IntentTodo     Intent = "TODO"
	IntentTask     Intent = "TASK" // fallback: the whole line becomes a plain task
)

// Mutates reports whether a successful command of this intent changes the list.
func (i Intent) Mutates() bool {
	switch i {
	case IntentList, IntentFind:
		return false
	default:
		return true
	}
}

// Result is what a processed line produced.
type Result struct {
	Response string
	Mutated  bool
	Intent   Intent
}
