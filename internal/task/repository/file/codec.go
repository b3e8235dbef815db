package file

import (
	"bytes"
	"fmt"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
	"task-assistant/pkg/datemath"
)

const (
	fieldSep = model.FieldSeparator
	flagDone = "Yes"
	flagTodo = "No"
)

// LineError describes a stored line that could not be decoded.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Codec converts a task list to and from the " ~ " separated line format:
//
//	T ~ No ~ read book
//	D ~ Yes ~ submit report ~ 2023-12-02 6pm
//	E ~ No ~ party ~ Sat night
//	No ~ buy milk
type Codec struct {
	normalizer *datemath.Normalizer
}

// NewCodec returns a codec that restores dates in the normalizer's timezone.
func NewCodec(normalizer *datemath.Normalizer) Codec {
	return Codec{normalizer: normalizer}
}

// Marshal encodes tasks, one newline-terminated line each, in list order.
func (c Codec) Marshal(tasks *model.Collection) []byte {
	var buf bytes.Buffer
	for _, t := range tasks.All() {
		buf.WriteString(encodeTask(t))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Unmarshal decodes data. Lines that cannot be decoded are skipped and
// returned as LineErrors; blank lines are ignored.
func (c Codec) Unmarshal(data []byte) (*model.Collection, []LineError) {
	tasks := model.NewCollection()
	var lineErrs []LineError

	// No line length cap: a single oversized line must not hide the ones after it.
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := c.decodeLine(line)
		if err != nil {
			lineErrs = append(lineErrs, LineError{Line: i + 1, Text: line, Err: err})
			continue
		}
		tasks.Add(t)
	}

	return tasks, lineErrs
}

func encodeTask(t *model.Task) string {
	switch t.Kind {
	case model.KindDeadline, model.KindEvent:
		return strings.Join([]string{string(t.Kind), t.DoneFlag(), t.Description, t.When.String()}, fieldSep)
	case model.KindToDo:
		return strings.Join([]string{string(t.Kind), t.DoneFlag(), t.Description}, fieldSep)
	default:
		return t.DoneFlag() + fieldSep + t.Description
	}
}

func (c Codec) decodeLine(line string) (*model.Task, error) {
	fields := strings.Split(line, fieldSep)

	var (
		t    *model.Task
		flag string
	)
	switch fields[0] {
	case string(model.KindToDo):
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: todo needs 3 fields, got %d", repository.ErrMalformedLine, len(fields))
		}
		flag = fields[1]
		t = model.NewToDo(strings.Join(fields[2:], fieldSep))

	case string(model.KindDeadline), string(model.KindEvent):
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: %s needs 4 fields, got %d", repository.ErrMalformedLine, fields[0], len(fields))
		}
		flag = fields[1]
		description := strings.Join(fields[2:len(fields)-1], fieldSep)
		when := c.decodeSchedule(fields[len(fields)-1])
		if fields[0] == string(model.KindDeadline) {
			t = model.NewDeadline(description, when)
		} else {
			t = model.NewEvent(description, when)
		}

	case flagDone, flagTodo:
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: task needs 2 fields, got %d", repository.ErrMalformedLine, len(fields))
		}
		flag = fields[0]
		t = model.NewTask(strings.Join(fields[1:], fieldSep))

	default:
		return nil, fmt.Errorf("%w %q", repository.ErrUnknownKind, fields[0])
	}

	switch flag {
	case flagDone:
		t.MarkDone()
	case flagTodo:
	default:
		return nil, fmt.Errorf("%w: done flag %q", repository.ErrMalformedLine, flag)
	}
	return t, nil
}

// decodeSchedule restores a calendar date when info looks like "YYYY-MM-DD <time>".
func (c Codec) decodeSchedule(info string) model.Schedule {
	s := model.Schedule{Text: info}
	date, rest, ok := strings.Cut(info, " ")
	if !ok || c.normalizer == nil {
		return s
	}
	d, err := c.normalizer.ParseISO(date)
	if err != nil {
		return s
	}
	s.Date = &d
	s.Time = rest
	return s
}
