package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAlbums            = "albums"
	KeyImageCount        = "image_count"
	KeyBack              = "back"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeyImageOf           = "image_of"
	KeyRemove            = "remove"
	KeyTopText           = "top_text"
	KeyBottomText        = "bottom_text"
	KeyFontSize          = "font_size"
	KeyExport            = "export"
	KeyExportAll         = "export_all"
	KeyAddImage          = "add_image"
	KeyBackToAlbums      = "back_to_albums"
	KeyNoImageSelected   = "no_image_selected"
	KeySelectImage       = "select_image"
	KeyExporting         = "exporting"
	KeyExported          = "exported"
	KeyExportFailed      = "export_failed"
	KeyExportAllDone     = "export_all_done"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyExportDirectory   = "export_directory"
	KeyExportDelay       = "export_delay"
	KeyAssetSource       = "asset_source"
	KeyAutoReveal        = "auto_reveal"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyExportSettings    = "export_settings"
	KeyInterfaceSettings = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Meme Maker",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAlbums:            "Choose an album",
		KeyImageCount:        "%d images",
		KeyBack:              "Back",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyImageOf:           "Image %d of %d",
		KeyRemove:            "Remove",
		KeyTopText:           "Top text",
		KeyBottomText:        "Bottom text",
		KeyFontSize:          "Font size",
		KeyExport:            "Export",
		KeyExportAll:         "Export All (%d)",
		KeyAddImage:          "Add another image",
		KeyBackToAlbums:      "Back to albums",
		KeyNoImageSelected:   "No image selected",
		KeySelectImage:       "Select Image",
		KeyExporting:         "Exporting %s...",
		KeyExported:          "Saved %s",
		KeyExportFailed:      "Export failed",
		KeyExportAllDone:     "Exported %d of %d memes",
		KeyReveal:            "Show in folder",
		KeyOpen:              "Open",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyExportDirectory:   "Export Directory",
		KeyExportDelay:       "Delay Between Exports (ms)",
		KeyAssetSource:       "Image Source (URL or folder)",
		KeyAutoReveal:        "Open folder after Export All",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "The new image source is used after restart",
		KeyErrorOpeningFile:  "Error opening file",
		KeyExportSettings:    "Export Settings",
		KeyInterfaceSettings: "Interface Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Генератор мемов",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAlbums:            "Выберите альбом",
		KeyImageCount:        "Изображений: %d",
		KeyBack:              "Назад",
		KeyPrevious:          "Предыдущее",
		KeyNext:              "Следующее",
		KeyImageOf:           "Изображение %d из %d",
		KeyRemove:            "Удалить",
		KeyTopText:           "Верхний текст",
		KeyBottomText:        "Нижний текст",
		KeyFontSize:          "Размер шрифта",
		KeyExport:            "Экспорт",
		KeyExportAll:         "Экспортировать все (%d)",
		KeyAddImage:          "Добавить изображение",
		KeyBackToAlbums:      "К альбомам",
		KeyNoImageSelected:   "Изображение не выбрано",
		KeySelectImage:       "Выбрать изображение",
		KeyExporting:         "Экспорт %s...",
		KeyExported:          "Сохранено: %s",
		KeyExportFailed:      "Ошибка экспорта",
		KeyExportAllDone:     "Экспортировано %d из %d",
		KeyReveal:            "Показать в папке",
		KeyOpen:              "Открыть",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyExportDirectory:   "Папка экспорта",
		KeyExportDelay:       "Пауза между файлами (мс)",
		KeyAssetSource:       "Источник изображений (URL или папка)",
		KeyAutoReveal:        "Открыть папку после экспорта",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Новый источник изображений будет использован после перезапуска",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyExportSettings:    "Экспорт",
		KeyInterfaceSettings: "Интерфейс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerador de Memes",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAlbums:            "Escolha um álbum",
		KeyImageCount:        "%d imagens",
		KeyBack:              "Voltar",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próxima",
		KeyImageOf:           "Imagem %d de %d",
		KeyRemove:            "Remover",
		KeyTopText:           "Texto superior",
		KeyBottomText:        "Texto inferior",
		KeyFontSize:          "Tamanho da fonte",
		KeyExport:            "Exportar",
		KeyExportAll:         "Exportar Tudo (%d)",
		KeyAddImage:          "Adicionar outra imagem",
		KeyBackToAlbums:      "Voltar aos álbuns",
		KeyNoImageSelected:   "Nenhuma imagem selecionada",
		KeySelectImage:       "Selecionar Imagem",
		KeyExporting:         "Exportando %s...",
		KeyExported:          "Salvo %s",
		KeyExportFailed:      "Falha na exportação",
		KeyExportAllDone:     "Exportados %d de %d memes",
		KeyReveal:            "Mostrar na pasta",
		KeyOpen:              "Abrir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyExportDelay:       "Intervalo Entre Exportações (ms)",
		KeyAssetSource:       "Origem das Imagens (URL ou pasta)",
		KeyAutoReveal:        "Abrir pasta após Exportar Tudo",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "A nova origem das imagens será usada após reiniciar",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyExportSettings:    "Exportação",
		KeyInterfaceSettings: "Interface",
	}
}
