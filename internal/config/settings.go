package config

import (
	"fyne.io/fyne/v2"

	"github.com/benkyoapp/benkyo-controls/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir            = "data_directory"
	KeyHistoryDays        = "history_days"
	KeyLanguage           = "app_language"
	KeyNotifyOnComplete   = "notify_on_complete"
	KeyLastSelectedSeries = "last_selected_series"
)

// Default values
const (
	DefaultHistoryDays      = 7
	DefaultLanguage         = "system"
	DefaultNotifyOnComplete = true

	// DefaultChartSeries selects the daily total; 0-based values name a row position
	DefaultChartSeries = -1

	MinHistoryDays = 2
	MaxHistoryDays = 31
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the configured day file directory
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDataDir()
		if err != nil {
			defaultDir = "/tmp/" + platform.DataDirName
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the day file directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetHistoryDays returns the chart window length in days
func (s *Settings) GetHistoryDays() int {
	value := s.app.Preferences().Int(KeyHistoryDays)
	if value <= 0 {
		s.SetHistoryDays(DefaultHistoryDays)
		return DefaultHistoryDays
	}
	return value
}

// SetHistoryDays sets the chart window length in days
func (s *Settings) SetHistoryDays(days int) {
	if days < MinHistoryDays {
		days = MinHistoryDays
	}
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}
	s.app.Preferences().SetInt(KeyHistoryDays, days)
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

// GetNotifyOnComplete returns whether to notify when all sliders reach maximum
func (s *Settings) GetNotifyOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyNotifyOnComplete, DefaultNotifyOnComplete)
}

// SetNotifyOnComplete sets whether to notify when all sliders reach maximum
func (s *Settings) SetNotifyOnComplete(notify bool) {
	s.app.Preferences().SetBool(KeyNotifyOnComplete, notify)
}

// GetLastSelectedSeries returns the chart series last chosen on the chart tab.
// The series is stored as an index so it survives language switches.
func (s *Settings) GetLastSelectedSeries() int {
	series := s.app.Preferences().IntWithFallback(KeyLastSelectedSeries, DefaultChartSeries)
	if series < DefaultChartSeries {
		return DefaultChartSeries
	}
	return series
}

// SetLastSelectedSeries remembers the chart series chosen on the chart tab
func (s *Settings) SetLastSelectedSeries(series int) {
	s.app.Preferences().SetInt(KeyLastSelectedSeries, series)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"ja":     "日本語",
		"en":     "English",
	}
}
