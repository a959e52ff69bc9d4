package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyTabEntry         = "tab_entry"
	KeyTabChart         = "tab_chart"
	KeyDate             = "date"
	KeyToday            = "today"
	KeyAdd              = "add"
	KeyText             = "text"
	KeySlider           = "slider"
	KeyTextPlaceholder  = "text_placeholder"
	KeyProgressCaption  = "progress_caption"
	KeyAllAtMax         = "all_at_max"
	KeyAdjustHint       = "adjust_hint"
	KeySelectedDate     = "selected_date"
	KeyCurrentInput     = "current_input"
	KeySeriesTotal      = "series_total"
	KeySeriesRow        = "series_row"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyDataDirectory    = "data_directory"
	KeyHistoryDays      = "history_days"
	KeyNotifyOnComplete = "notify_on_complete"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyRestartHint      = "restart_hint"
	KeyExport           = "export"
	KeyExportStarted    = "export_started"
	KeyExportCompleted  = "export_completed"
	KeyExportFailed     = "export_failed"
	KeyReveal           = "reveal"
	KeyOpen             = "open"
	KeyInvalidDate      = "invalid_date"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "ja",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// The app ships Japanese-first; system default resolves to ja
		lang = "ja"
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

	// Fallback to Japanese
	if texts, exists := l.texts["ja"]; exists {
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
		"ja": "日本語",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Japanese texts (primary)
	l.texts["ja"] = map[string]string{
		KeyAppTitle:         "テキストとスライダー",
		KeyTabEntry:         "入力",
		KeyTabChart:         "グラフ",
		KeyDate:             "日付",
		KeyToday:            "今日",
		KeyAdd:              "Add",
		KeyText:             "テキスト",
		KeySlider:           "スライダー",
		KeyTextPlaceholder:  "ここに入力してください",
		KeyProgressCaption:  "スライダー合計: %d / %d",
		KeyAllAtMax:         "すべてのスライダーが最大値になりました。",
		KeyAdjustHint:       "各スライダーの合計が最大値になるように調整してください。",
		KeySelectedDate:     "選択した日付: %s",
		KeyCurrentInput:     "現在の入力:",
		KeySeriesTotal:      "合計",
		KeySeriesRow:        "%d行目",
		KeySettings:         "設定",
		KeyFile:             "ファイル",
		KeyLanguage:         "言語",
		KeyDataDirectory:    "データフォルダー",
		KeyHistoryDays:      "グラフの日数",
		KeyNotifyOnComplete: "達成時に通知する",
		KeySave:             "保存",
		KeyCancel:           "キャンセル",
		KeyBrowse:           "参照",
		KeySettingsSaved:    "設定を保存しました。",
		KeyRestartHint:      "データフォルダーの変更は再起動後に反映されます。",
		KeyExport:           "書き出し",
		KeyExportStarted:    "書き出しを開始しました",
		KeyExportCompleted:  "書き出しが完了しました",
		KeyExportFailed:     "書き出しに失敗しました",
		KeyReveal:           "表示",
		KeyOpen:             "開く",
		KeyInvalidDate:      "日付の形式が正しくありません (YYYY-MM-DD)",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Text & Sliders",
		KeyTabEntry:         "Entry",
		KeyTabChart:         "Chart",
		KeyDate:             "Date",
		KeyToday:            "Today",
		KeyAdd:              "Add",
		KeyText:             "Text",
		KeySlider:           "Slider",
		KeyTextPlaceholder:  "Type here",
		KeyProgressCaption:  "Slider total: %d / %d",
		KeyAllAtMax:         "All sliders are at their maximum.",
		KeyAdjustHint:       "Adjust the sliders until the total reaches its maximum.",
		KeySelectedDate:     "Selected date: %s",
		KeyCurrentInput:     "Current input:",
		KeySeriesTotal:      "Total",
		KeySeriesRow:        "Row %d",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyDataDirectory:    "Data Directory",
		KeyHistoryDays:      "Chart Days",
		KeyNotifyOnComplete: "Notify on completion",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartHint:      "Data directory changes apply after restart.",
		KeyExport:           "Export",
		KeyExportStarted:    "Export started",
		KeyExportCompleted:  "Export completed",
		KeyExportFailed:     "Export failed",
		KeyReveal:           "Reveal",
		KeyOpen:             "Open",
		KeyInvalidDate:      "Invalid date format (YYYY-MM-DD)",
	}
}
