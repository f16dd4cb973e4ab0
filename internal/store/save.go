package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmorgan81/imagegen/internal/log"
	"github.com/samber/do"
)

type SaveParams struct {
	Name        string
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

// Saver persists a downloaded image and reports where it went.
type Saver interface {
	Save(context.Context, SaveParams) (string, error)
}

// Filename names a download after the moment it was requested.
func Filename(t time.Time) string {
	return fmt.Sprintf("generated-%d.png", t.UnixMilli())
}

type FileSaver struct {
	Dir string
}

func NewFileSaver(i *do.Injector) (Saver, error) {
	return &FileSaver{Dir: do.MustInvokeNamed[string](i, "download_dir")}, nil
}

// Save stages the payload in a temporary file next to the target and renames
// it into place, so a partial write never appears under the final name. The
// temporary file is gone when Save returns.
func (s *FileSaver) Save(ctx context.Context, params SaveParams) (path string, err error) {
	path = filepath.Join(s.Dir, params.Name)
	log := log.FromContextOrDiscard(ctx).WithGroup("file").With("path", path)
	log.Info("writing", "bytes", len(params.Data))

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(params.Data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename to %s: %w", path, err)
	}
	return path, nil
}
