package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// thumbJob is one grid tile waiting for its thumbnail
type thumbJob struct {
	ref   string
	image *canvas.Image
	tile  fyne.CanvasObject
}

// loadThumbnails fills the tiles in the background with a few workers. Tiles
// whose image cannot be loaded are hidden. Cancelling ctx abandons the rest.
func (ui *RootUI) loadThumbnails(ctx context.Context, jobs []thumbJob) {
	queue := make(chan thumbJob)

	for i := 0; i < ThumbnailWorkers; i++ {
		go func() {
			for job := range queue {
				ui.loadThumbnail(ctx, job)
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, job := range jobs {
			select {
			case queue <- job:
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (ui *RootUI) loadThumbnail(ctx context.Context, job thumbJob) {
	img, err := ui.thumbs.Thumbnail(ctx, job.ref)
	if ctx.Err() != nil {
		return
	}

	fyne.Do(func() {
		if err != nil {
			job.tile.Hide()
			return
		}
		job.image.Image = img
		job.image.Refresh()
	})
}
