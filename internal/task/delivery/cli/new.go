package cli

import (
	"io"

	"task-assistant/internal/task"
	pkgLog "task-assistant/pkg/log"
)

// UI holds the fixed texts the shell frames its output with.
type UI struct {
	Welcome string
	Goodbye string
	Divider string
}

// Shell is the interactive read-eval-print loop over a task.UseCase.
type Shell struct {
	l   pkgLog.Logger
	uc  task.UseCase
	in  io.Reader
	out io.Writer
	ui  UI
}

// New creates a shell reading commands from in and writing replies to out.
func New(l pkgLog.Logger, uc task.UseCase, in io.Reader, out io.Writer, ui UI) *Shell {
	return &Shell{
		l:   l,
		uc:  uc,
		in:  in,
		out: out,
		ui:  ui,
	}
}
