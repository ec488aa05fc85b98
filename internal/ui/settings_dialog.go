package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/meme-maker/internal/config"
)

// SettingsResult tells the caller which saved settings need follow-up
type SettingsResult struct {
	LanguageChanged    bool
	AssetSourceChanged bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsResult)

	// UI components
	exportDirEntry   *widget.Entry
	delayEntry       *widget.Entry
	assetSourceEntry *widget.Entry
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(SettingsResult)) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.delayEntry = widget.NewEntry()
	sd.delayEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxExportDelayMs))

	sd.assetSourceEntry = widget.NewEntry()
	sd.assetSourceEntry.SetPlaceHolder(config.DefaultAssetSource)

	sd.autoRevealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	languageOptions := make([]string, 0)
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyExportSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(l.GetText(KeyExportDelay)+":"),
		sd.delayEntry,

		sd.autoRevealCheck,

		widget.NewLabel(l.GetText(KeyAssetSource)+":"),
		sd.assetSourceEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 460))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.delayEntry.SetText(strconv.Itoa(sd.settings.GetExportDelayMs()))
	sd.assetSourceEntry.SetText(sd.settings.GetAssetSource())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	result := sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved(result)
	}
}

// apply writes the form values to the settings
func (sd *SettingsDialog) apply() SettingsResult {
	var result SettingsResult

	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	// Invalid numbers keep the stored delay
	if delay, err := strconv.Atoi(strings.TrimSpace(sd.delayEntry.Text)); err == nil {
		sd.settings.SetExportDelayMs(delay)
	}

	source := strings.TrimSpace(sd.assetSourceEntry.Text)
	if source != sd.settings.GetAssetSource() {
		sd.settings.SetAssetSource(source)
		result.AssetSourceChanged = true
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if lang := sd.languageSelect.Selected; lang != "" && lang != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(lang)
		result.LanguageChanged = true
	}

	return result
}
