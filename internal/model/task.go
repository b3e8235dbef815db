package model

import (
	"strings"
	"time"
)

// Kind tags the variant of a Task.
type Kind string

const (
	KindPlain    Kind = ""  // fallback: free text that matched no command keyword
	KindToDo     Kind = "T" // description only
	KindDeadline Kind = "D" // due by a Schedule
	KindEvent    Kind = "E" // occurs at a Schedule
)

// DateLayout is the layout dates are rendered and stored in.
const DateLayout = "2006-01-02"

// FieldSeparator delimits the fields of a stored task line. Task text may not
// contain it as a standalone token.
const FieldSeparator = " ~ "

// Schedule is the temporal attribute of a Deadline or an Event.
type Schedule struct {
	Text string     // free text as typed (normalized when it held a clock value)
	Date *time.Time // set only when a calendar date was recognized
	Time string     // text paired with Date
}

// HasDate reports whether the schedule carries a calendar date.
func (s Schedule) HasDate() bool {
	return s.Date != nil
}

// String is the schedule as shown to the user and written to disk.
func (s Schedule) String() string {
	if s.Date != nil {
		return s.Date.Format(DateLayout) + " " + s.Time
	}
	return s.Text
}

// Task is a single entry of the list. Kind selects the variant; When is only
// meaningful for KindDeadline and KindEvent.
type Task struct {
	Kind        Kind
	Description string
	When        Schedule
	done        bool
}

func NewTask(description string) *Task {
	return &Task{Kind: KindPlain, Description: description}
}

func NewToDo(description string) *Task {
	return &Task{Kind: KindToDo, Description: description}
}

func NewDeadline(description string, by Schedule) *Task {
	return &Task{Kind: KindDeadline, Description: description, When: by}
}

func NewEvent(description string, at Schedule) *Task {
	return &Task{Kind: KindEvent, Description: description, When: at}
}

// MarkDone marks the task as done. Calling it again has no further effect.
func (t *Task) MarkDone() {
	t.done = true
}

func (t *Task) IsDone() bool {
	return t.done
}

// DoneFlag is the persisted form of the done state.
func (t *Task) DoneFlag() string {
	if t.done {
		return "Yes"
	}
	return "No"
}

// Contains reports whether the description contains keyword (case-sensitive).
func (t *Task) Contains(keyword string) bool {
	return strings.Contains(t.Description, keyword)
}

// String renders the task, e.g. "[D][ ] submit report (by: 2023-12-02 6pm)".
func (t *Task) String() string {
	var sb strings.Builder
	if t.Kind != KindPlain {
		sb.WriteString("[" + string(t.Kind) + "]")
	}
	if t.done {
		sb.WriteString("[X] ")
	} else {
		sb.WriteString("[ ] ")
	}
	sb.WriteString(t.Description)

	switch t.Kind {
	case KindDeadline:
		sb.WriteString(" (by: " + t.When.String() + ")")
	case KindEvent:
		sb.WriteString(" (at: " + t.When.String() + ")")
	}
	return sb.String()
}
