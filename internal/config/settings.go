package config

import (
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/meme-maker/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir          = "export_directory"
	KeyExportDelay        = "export_delay_ms"
	KeyAssetSource        = "asset_source"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Environment overrides
const (
	// EnvAssetSource overrides the default asset source when no preference is stored
	EnvAssetSource = "MEME_ASSET_SOURCE"
	// EnvExportDir is the output directory of the command line tool
	EnvExportDir = "MEME_EXPORT_DIR"
)

// Default values
const (
	DefaultExportSubdir       = "memes"
	DefaultExportDelayMs      = 100
	MaxExportDelayMs          = 5000
	DefaultAssetSource        = "http://localhost:3000"
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the directory exported PNGs are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		downloads, err := platform.GetHomeDownloadsDir()
		if err != nil {
			downloads = os.TempDir()
		}
		dir = filepath.Join(downloads, DefaultExportSubdir)
		s.SetExportDirectory(dir)
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetExportDelayMs returns the pause between batch exports in milliseconds
func (s *Settings) GetExportDelayMs() int {
	return clampDelay(s.app.Preferences().IntWithFallback(KeyExportDelay, DefaultExportDelayMs))
}

// SetExportDelayMs sets the pause between batch exports, clamped to [0, MaxExportDelayMs]
func (s *Settings) SetExportDelayMs(ms int) {
	s.app.Preferences().SetInt(KeyExportDelay, clampDelay(ms))
}

// GetExportDelay returns the pause between batch exports
func (s *Settings) GetExportDelay() time.Duration {
	return time.Duration(s.GetExportDelayMs()) * time.Millisecond
}

func clampDelay(ms int) int {
	if ms < 0 {
		return 0
	}
	if ms > MaxExportDelayMs {
		return MaxExportDelayMs
	}
	return ms
}

// GetAssetSource returns the image host URL or local asset directory.
// A stored preference wins over the environment.
func (s *Settings) GetAssetSource() string {
	if source := s.app.Preferences().String(KeyAssetSource); source != "" {
		return source
	}
	if source := os.Getenv(EnvAssetSource); source != "" {
		return source
	}
	return DefaultAssetSource
}

// SetAssetSource sets the asset source; empty restores the default lookup
func (s *Settings) SetAssetSource(source string) {
	s.app.Preferences().SetString(KeyAssetSource, source)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal exported files when a batch completes
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal exported files when a batch completes
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
