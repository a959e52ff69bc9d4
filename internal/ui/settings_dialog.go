package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/benkyoapp/benkyo-controls/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 480
	SettingsDialogHeight = 360
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataDirEntry     *widget.Entry
	historyDaysEntry *widget.Entry
	notifyCheck      *widget.Check
	languageSelect   *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Data directory selection
	sd.dataDirEntry = widget.NewEntry()
	sd.dataDirEntry.SetPlaceHolder(sd.localization.GetText(KeyDataDirectory))

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	// Chart window length
	sd.historyDaysEntry = widget.NewEntry()
	sd.historyDaysEntry.SetPlaceHolder(strconv.Itoa(config.DefaultHistoryDays))

	// Completion notification
	sd.notifyCheck = widget.NewCheck(sd.localization.GetText(KeyNotifyOnComplete), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDataDirectory)+":"),
		dataDirRow,
		widget.NewLabel(sd.localization.GetText(KeyRestartHint)),

		widget.NewLabel(sd.localization.GetText(KeyHistoryDays)+":"),
		sd.historyDaysEntry,

		widget.NewSeparator(),
		sd.notifyCheck,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.historyDaysEntry.SetText(strconv.Itoa(sd.settings.GetHistoryDays()))
	sd.notifyCheck.SetChecked(sd.settings.GetNotifyOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dataDir := sd.dataDirEntry.Text; dataDir != "" {
		sd.settings.SetDataDirectory(dataDir)
	}

	if daysStr := sd.historyDaysEntry.Text; daysStr != "" {
		if days, err := strconv.Atoi(daysStr); err == nil {
			sd.settings.SetHistoryDays(days)
		}
	}

	sd.settings.SetNotifyOnComplete(sd.notifyCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
