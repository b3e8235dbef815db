package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
)

func (r *implRepository) Load(ctx context.Context) (*model.Collection, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.l.Infof(ctx, "%s: %s does not exist yet, starting empty", r.dsn("Load"), r.path)
		return model.NewCollection(), nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: read %s: %v", r.dsn("Load"), r.path, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	tasks, lineErrs := r.codec.Unmarshal(data)
	for _, le := range lineErrs {
		r.l.Warnf(ctx, "%s: skipping %s: %v", r.dsn("Load"), r.path, le)
	}
	r.l.Debugf(ctx, "%s: loaded %d tasks from %s", r.dsn("Load"), tasks.Size(), r.path)
	return tasks, nil
}

func (r *implRepository) Save(ctx context.Context, tasks *model.Collection) error {
	if err := writeFileAtomic(r.path, r.codec.Marshal(tasks), r.perm); err != nil {
		r.l.Errorf(ctx, "%s: write %s: %v", r.dsn("Save"), r.path, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

// writeFileAtomic replaces path with data through a synced temp file in the
// same directory, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	// Directory fsync is unsupported on some platforms; the rename already happened.
	_ = f.Sync()
	return nil
}
