package task

import (
	"context"
)

// UseCase is the single entry point every shell feeds its input lines through.
type UseCase interface {
	// Load reads the stored list into memory. On failure the list starts empty
	// and the returned error wraps ErrLoadFailed.
	Load(ctx context.Context) error

	// Execute runs one command line. Invalid input returns a *command.Error and
	// changes nothing. When the change could not be persisted the output is still
	// returned, together with an error wrapping ErrSaveFailed.
	Execute(ctx context.Context, input ExecuteInput) (ExecuteOutput, error)

	// List returns a snapshot of the current list.
	List(ctx context.Context) (ListOutput, error)
}
