package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/model"
	"github.com/ytget/meme-maker/internal/render"
)

// editorView edits the meme under the project cursor
type editorView struct {
	ui *RootUI

	prevBtn      *widget.Button
	nextBtn      *widget.Button
	removeBtn    *widget.Button
	counterLabel *widget.Label

	preview *canvas.Image

	topLabel    *widget.Label
	topEntry    *widget.Entry
	bottomLabel *widget.Label
	bottomEntry *widget.Entry
	sizeTitle   *widget.Label
	sizeSlider  *widget.Slider
	sizeLabel   *widget.Label

	exportBtn    *widget.Button
	exportAllBtn *widget.Button
	addBtn       *widget.Button
	backBtn      *widget.Button

	editor fyne.CanvasObject

	// Empty state
	emptyLabel *widget.Label
	selectBtn  *widget.Button
	empty      fyne.CanvasObject

	container *fyne.Container

	// Preview renders finishing out of order are dropped
	renderGen atomic.Uint64
	shownID   string
}

func newEditorView(ui *RootUI) *editorView {
	v := &editorView{ui: ui}
	l := ui.localization

	v.prevBtn = widget.NewButtonWithIcon(l.GetText(KeyPrevious), theme.NavigateBackIcon(), ui.project.Prev)
	v.nextBtn = widget.NewButtonWithIcon(l.GetText(KeyNext), theme.NavigateNextIcon(), ui.project.Next)
	v.removeBtn = widget.NewButtonWithIcon(l.GetText(KeyRemove), theme.DeleteIcon(), func() {
		ui.project.Remove(ui.project.Cursor())
	})
	v.removeBtn.Importance = widget.DangerImportance
	v.counterLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	nav := container.NewBorder(nil, nil,
		v.prevBtn,
		container.NewHBox(v.nextBtn, v.removeBtn),
		v.counterLabel,
	)

	v.preview = canvas.NewImageFromImage(nil)
	v.preview.FillMode = canvas.ImageFillContain
	v.preview.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))

	v.topLabel = widget.NewLabel(l.GetText(KeyTopText))
	v.topEntry = widget.NewEntry()
	v.topEntry.OnChanged = func(text string) {
		ui.project.Update(ui.project.Cursor(), model.FieldTopText, text)
	}

	v.bottomLabel = widget.NewLabel(l.GetText(KeyBottomText))
	v.bottomEntry = widget.NewEntry()
	v.bottomEntry.OnChanged = func(text string) {
		ui.project.Update(ui.project.Cursor(), model.FieldBottomText, text)
	}

	v.sizeTitle = widget.NewLabel(l.GetText(KeyFontSize))
	v.sizeSlider = widget.NewSlider(model.MinFontSize, model.MaxFontSize)
	v.sizeSlider.Step = SliderStep
	v.sizeLabel = widget.NewLabel(fmt.Sprintf(FontSizeFormat, model.DefaultFontSize))
	v.sizeSlider.OnChanged = func(value float64) {
		size := model.ClampFontSize(int(value))
		v.sizeLabel.SetText(fmt.Sprintf(FontSizeFormat, size))
		ui.project.Update(ui.project.Cursor(), model.FieldFontSize, size)
	}

	v.exportBtn = widget.NewButtonWithIcon(l.GetText(KeyExport), theme.DocumentSaveIcon(), ui.onExportCurrent)
	v.exportBtn.Importance = widget.HighImportance
	v.exportAllBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), ui.onExportAll)
	v.addBtn = widget.NewButtonWithIcon(l.GetText(KeyAddImage), theme.ContentAddIcon(), ui.onBackToCatalog)
	v.backBtn = widget.NewButtonWithIcon(l.GetText(KeyBackToAlbums), theme.HomeIcon(), ui.onBackToCatalog)
	v.backBtn.Importance = widget.LowImportance

	controls := container.NewVBox(
		v.topLabel,
		v.topEntry,
		v.bottomLabel,
		v.bottomEntry,
		container.NewBorder(nil, nil, v.sizeTitle, v.sizeLabel, v.sizeSlider),
		widget.NewSeparator(),
		container.NewGridWithColumns(2, v.exportBtn, v.exportAllBtn),
		container.NewGridWithColumns(2, v.addBtn, v.backBtn),
	)

	// Swiping the preview moves between memes
	swipe := newSwipeArea(func(g GestureType) {
		switch g {
		case GestureSwipeLeft:
			ui.project.Next()
		case GestureSwipeRight:
			ui.project.Prev()
		}
	})

	v.editor = container.NewBorder(nav, controls, nil, nil, container.NewStack(v.preview, swipe))

	v.emptyLabel = widget.NewLabelWithStyle(l.GetText(KeyNoImageSelected), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.selectBtn = widget.NewButton(l.GetText(KeySelectImage), ui.onBackToCatalog)
	v.selectBtn.Importance = widget.HighImportance
	v.empty = container.NewCenter(container.NewVBox(v.emptyLabel, v.selectBtn))

	v.container = container.NewStack(v.editor, v.empty)
	v.empty.Hide()
	return v
}

// refresh shows the meme under the cursor, or the empty state
func (v *editorView) refresh() {
	p := v.ui.project
	m, ok := p.Current()
	if v.ui.session.EditorEmpty() || !ok {
		v.shownID = ""
		v.preview.Image = nil
		v.preview.Refresh()
		v.editor.Hide()
		v.empty.Show()
		return
	}
	v.empty.Hide()
	v.editor.Show()

	v.counterLabel.SetText(fmt.Sprintf(v.ui.localization.GetText(KeyImageOf), p.Cursor()+1, p.Len()))
	setEnabled(v.prevBtn, p.HasPrev())
	setEnabled(v.nextBtn, p.HasNext())
	v.refreshExportButtons()

	if m.ID != v.shownID {
		// another meme: its image may fail to load, so do not keep the old one
		v.shownID = m.ID
		v.preview.Image = nil
		v.preview.Refresh()
	}

	// Setting the same value again is a no-op update, so these do not loop
	if v.topEntry.Text != m.TopText {
		v.topEntry.SetText(m.TopText)
	}
	if v.bottomEntry.Text != m.BottomText {
		v.bottomEntry.SetText(m.BottomText)
	}
	if int(v.sizeSlider.Value) != m.FontSize {
		v.sizeSlider.SetValue(float64(m.FontSize))
	}
	v.sizeLabel.SetText(fmt.Sprintf(FontSizeFormat, m.FontSize))

	v.renderPreview(m)
}

// renderPreview draws m off the UI goroutine and shows it if still current
func (v *editorView) renderPreview(m model.Meme) {
	gen := v.renderGen.Add(1)
	surface := render.NewGGSurface()
	done := v.ui.engine.RenderAsync(context.Background(), surface, m)

	go func() {
		if err := <-done; err != nil {
			// the engine already logged it; the preview stays blank
			return
		}
		if v.renderGen.Load() != gen {
			klog.V(2).Infof("dropping stale preview of %s", m.ID)
			return
		}

		img := surface.Image()
		fyne.Do(func() {
			if v.renderGen.Load() != gen {
				return
			}
			v.preview.Image = img
			v.preview.Refresh()
		})
	}()
}

// refreshExportButtons updates the export labels and disables them while exporting
func (v *editorView) refreshExportButtons() {
	n := v.ui.project.Len()
	v.exportAllBtn.SetText(fmt.Sprintf(v.ui.localization.GetText(KeyExportAll), n))

	busy := v.ui.exporting.Load()
	setEnabled(v.exportBtn, !busy && n > 0)
	setEnabled(v.exportAllBtn, !busy && n > 0)
}

func (v *editorView) refreshTexts() {
	l := v.ui.localization
	v.prevBtn.SetText(l.GetText(KeyPrevious))
	v.nextBtn.SetText(l.GetText(KeyNext))
	v.removeBtn.SetText(l.GetText(KeyRemove))
	v.topLabel.SetText(l.GetText(KeyTopText))
	v.bottomLabel.SetText(l.GetText(KeyBottomText))
	v.sizeTitle.SetText(l.GetText(KeyFontSize))
	v.exportBtn.SetText(l.GetText(KeyExport))
	v.addBtn.SetText(l.GetText(KeyAddImage))
	v.backBtn.SetText(l.GetText(KeyBackToAlbums))
	v.emptyLabel.SetText(l.GetText(KeyNoImageSelected))
	v.selectBtn.SetText(l.GetText(KeySelectImage))
	if p := v.ui.project; !p.IsEmpty() {
		v.counterLabel.SetText(fmt.Sprintf(l.GetText(KeyImageOf), p.Cursor()+1, p.Len()))
	}
	v.refreshExportButtons()
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
