package export

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ytget/meme-maker/internal/platform"
	"github.com/ytget/meme-maker/internal/render"
)

// Saver stores the encoded pixels of a surface under name and returns where it went
type Saver interface {
	Save(ctx context.Context, name string, s render.Surface) (string, error)
}

// DirSaver writes PNG files into a directory, creating it on first use.
// DirFunc, when set, is asked for the directory on every save and wins over Dir.
type DirSaver struct {
	Dir     string
	DirFunc func() string
}

// Save writes the surface to the directory as name
func (d *DirSaver) Save(ctx context.Context, name string, s render.Surface) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := d.Dir
	if d.DirFunc != nil {
		dir = d.DirFunc()
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := imgio.Save(path, s.Image(), imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	platform.NotifyMediaScanner(path)
	return path, nil
}
