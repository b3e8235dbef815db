package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/command"
	"task-assistant/internal/task"
	"task-assistant/pkg/log"
)

type mockUseCase struct {
	inputs []string
	reply  func(input string) (task.ExecuteOutput, error)
}

func (m *mockUseCase) Load(ctx context.Context) error { return nil }

func (m *mockUseCase) Execute(ctx context.Context, in task.ExecuteInput) (task.ExecuteOutput, error) {
	m.inputs = append(m.inputs, in.Input)
	return m.reply(in.Input)
}

func (m *mockUseCase) List(ctx context.Context) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

var testUI = UI{Welcome: "Hello! I'm Banana \nWhat can I do for you?", Goodbye: "Bye.", Divider: "    ____"}

func runShell(t *testing.T, uc *mockUseCase, input string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(log.NewNop(), uc, strings.NewReader(input), &out, testUI)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestShell_Session(t *testing.T) {
	uc := &mockUseCase{reply: func(input string) (task.ExecuteOutput, error) {
		return task.ExecuteOutput{Response: "Got it. I've added this task:\n  [T][ ] " + input}, nil
	}}

	got := runShell(t, uc, "todo read book\nbye\nlist\n")

	want := "    ____\n     Hello! I'm Banana \n     What can I do for you?\n    ____\n\n" +
		"    ____\n     Got it. I've added this task:\n       [T][ ] todo read book\n    ____\n\n" +
		"    ____\n     Bye.\n    ____\n\n"
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"todo read book"}, uc.inputs, "nothing after bye is executed")
}

func TestShell_Errors(t *testing.T) {
	uc := &mockUseCase{reply: func(input string) (task.ExecuteOutput, error) {
		switch input {
		case "todo":
			return task.ExecuteOutput{}, &command.Error{Kind: command.ErrEmptyDescription, Message: "☹ OOPS!!! The description of a todo cannot be empty."}
		default:
			return task.ExecuteOutput{Response: "Got it."}, fmt.Errorf("%w: disk full", task.ErrSaveFailed)
		}
	}}

	got := runShell(t, uc, "todo\ntodo x\n")

	assert.Contains(t, got, "     ☹ OOPS!!! The description of a todo cannot be empty.\n")
	assert.Contains(t, got, "     Got it.\n     "+saveWarning+"\n")
	assert.NotContains(t, got, "Bye.", "end of input exits without the goodbye label")
}
