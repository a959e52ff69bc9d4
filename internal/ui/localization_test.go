package ui

import "testing"

func TestLocalizationDefaultsToJapanese(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "ja" {
		t.Errorf("default language = %q, expected %q", l.GetCurrentLanguage(), "ja")
	}
	if got := l.GetText(KeyAppTitle); got != "テキストとスライダー" {
		t.Errorf("app title = %q, expected Japanese title", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("en")
	if got := l.GetText(KeyToday); got != "Today" {
		t.Errorf("en today = %q, expected %q", got, "Today")
	}

	// System resolves to Japanese
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "ja" {
		t.Errorf("system language resolved to %q, expected %q", l.GetCurrentLanguage(), "ja")
	}

	// Unknown languages keep the current one
	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "ja" {
		t.Errorf("unknown language switched to %q, expected %q", l.GetCurrentLanguage(), "ja")
	}
}

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	// Unknown key comes back verbatim
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key = %q, expected key itself", got)
	}
}

func TestLocalizationAvailableLanguages(t *testing.T) {
	l := NewLocalization()

	languages := l.GetAvailableLanguages()
	if len(languages) != 2 {
		t.Errorf("available languages = %d, expected 2", len(languages))
	}
	if _, ok := languages["ja"]; !ok {
		t.Error("expected ja in available languages")
	}
	if _, ok := languages["en"]; !ok {
		t.Error("expected en in available languages")
	}
}
