package ui

import "testing"

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	english := l.texts["en"]
	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("language %s has no texts", lang)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"},
	}

	for _, test := range tests {
		l := NewLocalization()
		l.SetLanguage(test.lang)
		if got := l.GetCurrentLanguage(); got != test.expected {
			t.Errorf("SetLanguage(%q): current = %s, expected %s", test.lang, got, test.expected)
		}
	}
}

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyExport); got != "Export" {
		t.Errorf("GetText(KeyExport) = %q, expected Export", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyExport); got != "Экспорт" {
		t.Errorf("GetText(KeyExport) in ru = %q, expected Экспорт", got)
	}

	// Unknown keys come back as is
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("GetText(unknown) = %q, expected the key", got)
	}
}
