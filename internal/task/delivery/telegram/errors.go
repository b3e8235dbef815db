package telegram

import (
	"errors"

	"task-assistant/internal/command"
	"task-assistant/internal/task"
)

// replyFor turns the result of one Execute into the text sent back to the chat.
func replyFor(out task.ExecuteOutput, err error) string {
	if err == nil {
		return out.Response
	}

	var cmdErr *command.Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Message
	}
	if errors.Is(err, task.ErrSaveFailed) {
		return out.Response + "\n\n" + saveWarning
	}
	return internalFailure
}
