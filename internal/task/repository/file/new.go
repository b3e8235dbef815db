package file

import (
	"fmt"
	"os"

	"task-assistant/internal/task/repository"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/log"
)

const defaultPerm os.FileMode = 0o644

type implRepository struct {
	path  string
	perm  os.FileMode
	codec Codec
	l     log.Logger
}

// New creates a TaskRepository backed by the plain-text file at path.
// Stored dates are restored in the normalizer's timezone.
func New(path string, normalizer *datemath.Normalizer, l log.Logger) repository.TaskRepository {
	if path == "" {
		panic("task/repository/file: path is required")
	}
	return &implRepository{
		path:  path,
		perm:  defaultPerm,
		codec: NewCodec(normalizer),
		l:     l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/file.%s", method)
}
