package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/meme-maker/internal/catalog"
)

// catalogView lists the albums
type catalogView struct {
	ui        *RootUI
	title     *widget.Label
	counts    map[string]*widget.Label
	container fyne.CanvasObject
}

func newCatalogView(ui *RootUI) *catalogView {
	v := &catalogView{
		ui:     ui,
		counts: make(map[string]*widget.Label),
	}

	v.title = widget.NewLabelWithStyle(ui.localization.GetText(KeyAlbums), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	albums := catalog.ListAlbums()
	cards := make([]fyne.CanvasObject, 0, len(albums))
	jobs := make([]thumbJob, 0, len(albums))
	for _, album := range albums {
		card, cover := v.albumCard(album)
		cards = append(cards, card)
		jobs = append(jobs, thumbJob{ref: album.ThumbnailURL(), image: cover, tile: cover})
	}

	grid := container.NewGridWrap(fyne.NewSize(AlbumCardWidth, AlbumCardHeight), cards...)
	v.container = container.NewBorder(v.title, nil, nil, nil, container.NewVScroll(grid))

	// A missing cover only hides the picture, the album stays selectable
	ui.loadThumbnails(context.Background(), jobs)
	return v
}

func (v *catalogView) albumCard(album catalog.Album) (fyne.CanvasObject, *canvas.Image) {
	cover := canvas.NewImageFromImage(nil)
	cover.FillMode = canvas.ImageFillContain
	cover.SetMinSize(fyne.NewSize(AlbumCardWidth, AlbumCardWidth))

	name := widget.NewLabelWithStyle(album.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	count := widget.NewLabelWithStyle(v.countText(album), fyne.TextAlignCenter, fyne.TextStyle{})
	v.counts[album.ID] = count

	id := album.ID
	tap := widget.NewButton("", func() {
		v.ui.onSelectAlbum(id)
	})
	tap.Importance = widget.LowImportance

	body := container.NewBorder(nil, container.NewVBox(name, count), nil, nil, cover)
	return container.NewStack(tap, body), cover
}

func (v *catalogView) countText(album catalog.Album) string {
	return fmt.Sprintf(v.ui.localization.GetText(KeyImageCount), album.ImageCount)
}

func (v *catalogView) refreshTexts() {
	v.title.SetText(v.ui.localization.GetText(KeyAlbums))
	for _, album := range catalog.ListAlbums() {
		if label, ok := v.counts[album.ID]; ok {
			label.SetText(v.countText(album))
		}
	}
}
