package export

import (
	"context"
	"time"

	"github.com/ytget/meme-maker/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	ExportOne(ctx context.Context, index int) (*model.ExportTask, error)
	ExportAll(ctx context.Context) ([]*model.ExportTask, error)
	Tasks() []*model.ExportTask

	// SetDelay sets the pause between consecutive exports of ExportAll
	SetDelay(d time.Duration)
}
