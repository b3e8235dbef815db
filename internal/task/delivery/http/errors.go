package http

import (
	"errors"

	"task-assistant/internal/command"
	"task-assistant/internal/task"
)

var errInvalidBody = errors.New(`body must be {"input": "<command>"}`)

const saveWarning = "the change is applied in memory but could not be saved"

// mapError splits a use case error into what the client should see.
// handled is false for errors that are not the client's fault.
func (h *handler) mapError(err error) (clientErr error, warning string, handled bool) {
	var cmdErr *command.Error
	switch {
	case errors.As(err, &cmdErr):
		return errors.New(cmdErr.Message), "", true
	case errors.Is(err, task.ErrSaveFailed):
		return nil, saveWarning, true
	default:
		return nil, "", false
	}
}
