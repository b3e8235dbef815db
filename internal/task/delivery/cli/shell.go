package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"task-assistant/internal/command"
	"task-assistant/internal/task"
	pkgLog "task-assistant/pkg/log"
)

const (
	exitCommand = "bye"
	indent      = "     "

	saveWarning = "(warning: this change could not be saved to disk)"
)

// Run greets the user and handles lines until "bye", end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.display(s.ui.Welcome); err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == exitCommand {
			return s.display(s.ui.Goodbye)
		}

		lineCtx := pkgLog.WithTraceID(ctx, uuid.NewString())
		out, err := s.uc.Execute(lineCtx, task.ExecuteInput{Input: line})
		if err := s.display(s.reply(lineCtx, out, err)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (s *Shell) reply(ctx context.Context, out task.ExecuteOutput, err error) string {
	if err == nil {
		return out.Response
	}

	var cmdErr *command.Error
	switch {
	case errors.As(err, &cmdErr):
		return cmdErr.Message
	case errors.Is(err, task.ErrSaveFailed):
		s.l.Warnf(ctx, "cli.Shell: %v", err)
		return out.Response + "\n" + saveWarning
	default:
		s.l.Errorf(ctx, "cli.Shell: %v", err)
		return err.Error()
	}
}

// display writes text between two dividers, every line indented.
func (s *Shell) display(text string) error {
	var sb strings.Builder
	sb.WriteString(s.ui.Divider + "\n")
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(indent + line + "\n")
	}
	sb.WriteString(s.ui.Divider + "\n\n")

	_, err := fmt.Fprint(s.out, sb.String())
	return err
}
