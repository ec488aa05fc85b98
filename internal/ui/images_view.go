package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/meme-maker/internal/catalog"
)

// imagesView shows the images of one album
type imagesView struct {
	ui        *RootUI
	title     *widget.Label
	backBtn   *widget.Button
	grid      *fyne.Container
	container fyne.CanvasObject

	cancel context.CancelFunc
}

func newImagesView(ui *RootUI) *imagesView {
	v := &imagesView{ui: ui}

	v.title = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.backBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyBack), theme.NavigateBackIcon(), ui.onBackToCatalog)
	v.grid = container.NewGridWrap(fyne.NewSize(ImageTileSize, ImageTileSize))

	header := container.NewBorder(nil, nil, v.backBtn, nil, v.title)
	v.container = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.grid))
	return v
}

// show fills the grid with the album's images and starts loading thumbnails
func (v *imagesView) show(album catalog.Album, images []catalog.Image) {
	v.stop()
	v.title.SetText(album.Name)

	tiles := make([]fyne.CanvasObject, 0, len(images))
	jobs := make([]thumbJob, 0, len(images))
	for _, img := range images {
		thumb := canvas.NewImageFromImage(nil)
		thumb.FillMode = canvas.ImageFillContain
		thumb.SetMinSize(fyne.NewSize(ImageTileSize, ImageTileSize))

		url := img.HighResURL
		tap := widget.NewButton("", func() {
			v.ui.onSelectImage(url)
		})
		tap.Importance = widget.LowImportance

		tile := container.NewStack(tap, thumb)
		tiles = append(tiles, tile)
		jobs = append(jobs, thumbJob{ref: img.URL, image: thumb, tile: tile})
	}
	v.grid.Objects = tiles
	v.grid.Refresh()

	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.ui.loadThumbnails(ctx, jobs)
}

// stop abandons pending thumbnail loads
func (v *imagesView) stop() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *imagesView) refreshTexts() {
	v.backBtn.SetText(v.ui.localization.GetText(KeyBack))
}
