package ui

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/config"
	"github.com/ytget/meme-maker/internal/export"
	"github.com/ytget/meme-maker/internal/model"
	"github.com/ytget/meme-maker/internal/platform"
	"github.com/ytget/meme-maker/internal/project"
	"github.com/ytget/meme-maker/internal/render"
	"github.com/ytget/meme-maker/internal/session"
	"github.com/ytget/meme-maker/internal/thumbnail"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      *session.Session
	project      *project.Project
	engine       *render.Engine
	exportSvc    export.Exporter
	thumbs       *thumbnail.Service
	settings     *config.Settings
	localization *Localization

	// One view is shown at a time
	content *fyne.Container
	catalog *catalogView
	images  *imagesView
	editor  *editorView

	settingsBtn *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	revealBtn             *widget.Button
	openBtn               *widget.Button

	lastOutput  string
	outputMutex sync.Mutex

	exporting atomic.Bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sess *session.Session, engine *render.Engine, exportSvc export.Exporter, thumbs *thumbnail.Service) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      sess,
		project:      sess.Project(),
		engine:       engine,
		exportSvc:    exportSvc,
		thumbs:       thumbs,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for export updates
	ui.exportSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()

	sess.OnViewChange(ui.showView)
	ui.project.OnChange(ui.onProjectChange)
	ui.showView(sess.View())

	klog.V(1).Infof("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	var topPanel *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		topPanel = container.NewHBox(logoImage, ui.settingsBtn)
	} else {
		topPanel = container.NewHBox(ui.settingsBtn)
	}

	// Notification panel under the top bar, hidden by default
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.revealBtn = widget.NewButton(ui.localization.GetText(KeyReveal), ui.onRevealLast)
	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenLast)
	ui.revealBtn.Hide()
	ui.openBtn.Hide()
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil,
		ui.notificationSpinner,
		container.NewHBox(ui.revealBtn, ui.openBtn, closeBtn),
		ui.notificationLabel,
	)
	ui.notificationContainer.Hide()

	ui.catalog = newCatalogView(ui)
	ui.images = newImagesView(ui)
	ui.editor = newEditorView(ui)
	ui.content = container.NewStack()

	ui.window.SetContent(container.NewBorder(
		container.NewVBox(topPanel, ui.notificationContainer),
		nil,
		nil,
		nil,
		ui.content,
	))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.revealBtn.SetText(ui.localization.GetText(KeyReveal))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))
	ui.catalog.refreshTexts()
	ui.images.refreshTexts()
	ui.editor.refreshTexts()
}

// showView swaps the content for the session's view
func (ui *RootUI) showView(v session.View) {
	var view fyne.CanvasObject
	switch v {
	case session.ViewImages:
		album, _ := ui.session.Album()
		ui.images.show(album, ui.session.Images())
		view = ui.images.container
	case session.ViewEditor:
		ui.images.stop()
		ui.editor.refresh()
		view = ui.editor.container
	default:
		ui.images.stop()
		view = ui.catalog.container
	}

	klog.V(1).Infof("showing %s view", v)
	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// onProjectChange keeps the editor in sync with the caption project
func (ui *RootUI) onProjectChange() {
	if ui.session.View() == session.ViewEditor {
		ui.editor.refresh()
	}
}

// onSelectAlbum opens the image browser for the album
func (ui *RootUI) onSelectAlbum(id string) {
	if err := ui.session.SelectAlbum(id); err != nil {
		klog.Warningf("select album %s: %v", id, err)
	}
}

// onSelectImage starts a meme for the image and opens the editor
func (ui *RootUI) onSelectImage(url string) {
	if _, err := ui.session.SelectImage(url); err != nil {
		klog.Warningf("select image %s: %v", url, err)
	}
}

// onBackToCatalog returns to the album list
func (ui *RootUI) onBackToCatalog() {
	ui.session.BackToCatalog()
}

// onExportCurrent exports the meme under the cursor
func (ui *RootUI) onExportCurrent() {
	index := ui.project.Cursor()
	if ui.project.IsEmpty() || !ui.beginExport() {
		return
	}

	go func() {
		defer ui.endExport()

		task, err := ui.exportSvc.ExportOne(context.Background(), index)
		if err != nil {
			ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
			return
		}
		ui.showExported(task.OutputPath, fmt.Sprintf(ui.localization.GetText(KeyExported), task.GetDisplayTitle()))
	}()
}

// onExportAll exports every meme, one after another
func (ui *RootUI) onExportAll() {
	if ui.project.IsEmpty() || !ui.beginExport() {
		return
	}

	go func() {
		defer ui.endExport()

		tasks, err := ui.exportSvc.ExportAll(context.Background())
		if err != nil {
			klog.Errorf("export all stopped: %v", err)
		}

		done := 0
		last := ""
		for _, task := range tasks {
			if task.Status.IsFinished() && task.LastError == "" {
				done++
				last = task.OutputPath
			}
		}

		message := fmt.Sprintf(ui.localization.GetText(KeyExportAllDone), done, len(tasks))
		ui.showExported(last, message)
		ui.sendCompletionNotification(message)

		if done > 0 && ui.settings.GetAutoRevealOnComplete() {
			if err := platform.OpenDirectory(ui.settings.GetExportDirectory()); err != nil {
				klog.Warningf("reveal export directory: %v", err)
			}
		}
	}()
}

func (ui *RootUI) beginExport() bool {
	if !ui.exporting.CompareAndSwap(false, true) {
		return false
	}
	ui.editor.refreshExportButtons()
	return true
}

func (ui *RootUI) endExport() {
	ui.exporting.Store(false)
	fyne.Do(ui.editor.refreshExportButtons)
}

// onTaskUpdate reports export progress
func (ui *RootUI) onTaskUpdate(task *model.ExportTask) {
	switch {
	case task.Status.IsActive():
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyExporting), task.GetDisplayTitle()), true)
	case task.Status.IsFinished() && task.LastError != "":
		klog.Warningf("export %s failed: %s", task.FileName, task.LastError)
	}
}

// showExported shows message and offers to reveal or open path
func (ui *RootUI) showExported(path, message string) {
	ui.outputMutex.Lock()
	ui.lastOutput = path
	ui.outputMutex.Unlock()

	ui.showNotification(message, false)
	fyne.Do(func() {
		if path == "" {
			ui.revealBtn.Hide()
			ui.openBtn.Hide()
			return
		}
		ui.revealBtn.Show()
		ui.openBtn.Show()
	})
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
			ui.revealBtn.Hide()
			ui.openBtn.Hide()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// sendCompletionNotification sends a system notification for a finished batch
func (ui *RootUI) sendCompletionNotification(message string) {
	ui.app.SendNotification(fyne.NewNotification(ui.localization.GetText(KeyAppTitle), message))

	go func() {
		time.Sleep(ToastAutoHide)
		if !ui.exporting.Load() {
			ui.hideNotification()
		}
	}()
}

func (ui *RootUI) lastOutputPath() string {
	ui.outputMutex.Lock()
	defer ui.outputMutex.Unlock()
	return ui.lastOutput
}

// onRevealLast shows the last exported file in the file manager
func (ui *RootUI) onRevealLast() {
	path := ui.lastOutputPath()
	if path == "" {
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		klog.Warningf("reveal %s: %v", path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenLast opens the last exported file in the default image viewer
func (ui *RootUI) onOpenLast() {
	path := ui.lastOutputPath()
	if path == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		klog.Warningf("open %s: %v", path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(result SettingsResult) {
		ui.exportSvc.SetDelay(ui.settings.GetExportDelay())
		if result.LanguageChanged {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
		if result.AssetSourceChanged {
			dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeyRestartRequired), ui.window)
		}
	})
}
