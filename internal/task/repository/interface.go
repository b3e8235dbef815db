package repository

import (
	"context"

	"task-assistant/internal/model"
)

// TaskRepository persists the whole task list at once.
type TaskRepository interface {
	// Load reads the stored list. A store that does not exist yet yields an empty collection.
	Load(ctx context.Context) (*model.Collection, error)
	// Save replaces the stored list with tasks.
	Save(ctx context.Context, tasks *model.Collection) error
}
