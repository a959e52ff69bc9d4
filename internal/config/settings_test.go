package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDataDirectory()
	if dir == "" {
		t.Error("Data directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/benkyo"
	settings.SetDataDirectory(customDir)

	retrievedDir := settings.GetDataDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, retrievedDir)
	}
}

func TestHistoryDays(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	days := settings.GetHistoryDays()
	if days != DefaultHistoryDays {
		t.Errorf("Expected default history days %d, got %d", DefaultHistoryDays, days)
	}

	// Test setting custom value
	settings.SetHistoryDays(14)
	if settings.GetHistoryDays() != 14 {
		t.Errorf("Expected history days 14, got %d", settings.GetHistoryDays())
	}

	// Test boundary values
	settings.SetHistoryDays(1) // Should be clamped to MinHistoryDays
	if settings.GetHistoryDays() != MinHistoryDays {
		t.Errorf("History days should be clamped to minimum %d", MinHistoryDays)
	}

	settings.SetHistoryDays(90) // Should be clamped to MaxHistoryDays
	if settings.GetHistoryDays() != MaxHistoryDays {
		t.Errorf("History days should be clamped to maximum %d", MaxHistoryDays)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ja")
	if settings.GetLanguage() != "ja" {
		t.Errorf("Expected language ja, got %s", settings.GetLanguage())
	}
}

func TestNotifyOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetNotifyOnComplete() {
		t.Error("Notify on complete should default to true")
	}

	// Test setting custom value
	settings.SetNotifyOnComplete(false)
	if settings.GetNotifyOnComplete() {
		t.Error("Expected notify on complete to be false after disabling")
	}
}

func TestLastSelectedSeries(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value (daily total)
	if series := settings.GetLastSelectedSeries(); series != DefaultChartSeries {
		t.Errorf("Expected default series %d, got %d", DefaultChartSeries, series)
	}

	// The saved series is an index, independent of the display language
	settings.SetLastSelectedSeries(2)
	if series := settings.GetLastSelectedSeries(); series != 2 {
		t.Errorf("Expected series 2, got %d", series)
	}

	// Values below the total sentinel read back as the total
	settings.SetLastSelectedSeries(-5)
	if series := settings.GetLastSelectedSeries(); series != DefaultChartSeries {
		t.Errorf("Expected series clamped to %d, got %d", DefaultChartSeries, series)
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "ja", "en"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %q to be available", code)
		}
	}
}
