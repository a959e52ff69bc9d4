package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/benkyoapp/benkyo-controls/internal/config"
	"github.com/benkyoapp/benkyo-controls/internal/export"
	"github.com/benkyoapp/benkyo-controls/internal/model"
	"github.com/benkyoapp/benkyo-controls/internal/platform"
	"github.com/benkyoapp/benkyo-controls/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	storeSvc     store.Recorder
	exportSvc    export.Exporter

	// Date bar
	dateLabel *widget.Label
	dateEntry *widget.Entry
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	todayBtn  *widget.Button
	addBtn    *widget.Button

	// Progress header
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	hintLabel     *widget.Label

	// Row list
	textHeader   *widget.Label
	sliderHeader *widget.Label
	rowsBox      *fyne.Container
	rowWidgets   []*EntryRow

	// Footer (selected date + JSON dump of the current input)
	selectedDateLabel *widget.Label
	currentInputLabel *widget.Label

	// Chart tab
	chart         *BarChart
	seriesSelect  *widget.Select
	seriesOptions []int
	currentSeries int

	tabs *container.AppTabs

	// Tracks the completed state so the notification fires once per crossing
	wasComplete bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, storeSvc store.Recorder, exportSvc export.Exporter) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		settings:      settings,
		localization:  localization,
		storeSvc:      storeSvc,
		exportSvc:     exportSvc,
		currentSeries: settings.GetLastSelectedSeries(),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire service callbacks
	ui.storeSvc.SetUpdateCallback(ui.onDayUpdate)
	ui.storeSvc.SetHistoryCallback(ui.onHistoryChanged)
	ui.exportSvc.SetUpdateCallback(ui.onExportUpdate)

	ui.setupUI()

	// Render the initial day and chart
	ui.renderDay(ui.storeSvc.Day())
	ui.refreshChart()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Date bar
	ui.dateLabel = widget.NewLabel(ui.localization.GetText(KeyDate))
	ui.dateEntry = widget.NewEntry()
	ui.dateEntry.Validator = ui.validateDate
	ui.dateEntry.OnSubmitted = ui.onDateSubmitted
	ui.prevBtn = widget.NewButton(IconPrevDay, func() { ui.shiftDate(-1) })
	ui.nextBtn = widget.NewButton(IconNextDay, func() { ui.shiftDate(1) })
	ui.todayBtn = widget.NewButton(ui.localization.GetText(KeyToday), func() {
		ui.selectDate(time.Now())
	})

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	dateBar := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.dateLabel, ui.prevBtn),
		container.NewHBox(ui.nextBtn, ui.todayBtn),
		ui.dateEntry,
	)

	// Progress header
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string { return "" }
	ui.progressLabel = widget.NewLabel("")
	ui.hintLabel = widget.NewLabel("")

	progressPanel := container.NewVBox(ui.progressLabel, ui.progressBar, ui.hintLabel)

	// Add button
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAdd), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	// Column header shown once above the row list
	ui.textHeader = widget.NewLabel(ui.localization.GetText(KeyText))
	ui.textHeader.TextStyle = fyne.TextStyle{Bold: true}
	ui.sliderHeader = widget.NewLabel(ui.localization.GetText(KeySlider))
	ui.sliderHeader.TextStyle = fyne.TextStyle{Bold: true}
	columnHeader := container.NewBorder(nil, nil, ui.textHeader, ui.sliderHeader)

	// Row list
	ui.rowsBox = container.NewVBox()
	rowsScroll := container.NewVScroll(ui.rowsBox)

	// Footer: selected date and the JSON dump of the current input
	ui.selectedDateLabel = widget.NewLabel("")
	ui.currentInputLabel = widget.NewLabel("")
	ui.currentInputLabel.TextStyle = fyne.TextStyle{Monospace: true}
	footer := container.NewVBox(
		widget.NewSeparator(),
		ui.selectedDateLabel,
		ui.currentInputLabel,
	)

	entryContent := container.NewBorder(
		container.NewVBox(dateBar, progressPanel, container.NewHBox(ui.addBtn), columnHeader), // top
		footer,     // bottom
		nil,        // left
		nil,        // right
		rowsScroll, // center
	)

	// Chart tab
	ui.chart = NewBarChart()
	ui.seriesSelect = widget.NewSelect(nil, ui.onSeriesSelected)
	chartContent := container.NewBorder(
		container.NewHBox(ui.seriesSelect), // top
		nil, nil, nil,
		ui.chart,
	)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabEntry), entryContent),
		container.NewTabItem(ui.localization.GetText(KeyTabChart), chartContent),
	)
	ui.tabs.OnSelected = func(item *container.TabItem) {
		if item.Text == ui.localization.GetText(KeyTabChart) {
			ui.refreshChart()
		}
	}

	ui.window.SetContent(ui.tabs)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// File menu items
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExport)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), exportItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.dateLabel.SetText(ui.localization.GetText(KeyDate))
	ui.todayBtn.SetText(ui.localization.GetText(KeyToday))
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.textHeader.SetText(ui.localization.GetText(KeyText))
	ui.sliderHeader.SetText(ui.localization.GetText(KeySlider))

	ui.tabs.Items[0].Text = ui.localization.GetText(KeyTabEntry)
	ui.tabs.Items[1].Text = ui.localization.GetText(KeyTabChart)
	ui.tabs.Refresh()

	// Re-render dynamic texts (progress caption, hints, selector labels)
	ui.renderDay(ui.storeSvc.Day())
	ui.refreshChart()
}

// validateDate validates the entered date
func (ui *RootUI) validateDate(input string) error {
	if input == "" {
		return nil
	}
	if _, err := time.ParseInLocation(DateEntryLayout, input, time.Local); err != nil {
		return fmt.Errorf("%s", ui.localization.GetText(KeyInvalidDate))
	}
	return nil
}

// onDateSubmitted handles a date typed into the date entry
func (ui *RootUI) onDateSubmitted(input string) {
	date, err := time.ParseInLocation(DateEntryLayout, input, time.Local)
	if err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidDate)), ui.window.Canvas())
		return
	}
	ui.selectDate(date)
}

// shiftDate moves the selected date by delta days
func (ui *RootUI) shiftDate(delta int) {
	current := ui.storeSvc.Day().Date
	ui.selectDate(current.AddDate(0, 0, delta))
}

// selectDate switches the store to the given date
func (ui *RootUI) selectDate(date time.Time) {
	if _, err := ui.storeSvc.SelectDate(date); err != nil {
		log.Printf("Failed to select date %s: %v", date.Format(DateEntryLayout), err)
		widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
		return
	}
	ui.refreshChart()
}

// onAddClick handles the Add button
func (ui *RootUI) onAddClick() {
	row := ui.storeSvc.AddRow()
	log.Printf("Add clicked, new row id=%d", row.ID)
}

// onRowTextChanged propagates a text edit to the store
func (ui *RootUI) onRowTextChanged(rowID int, text string) {
	if err := ui.storeSvc.SetRowText(rowID, text); err != nil {
		log.Printf("Failed to set text for row %d: %v", rowID, err)
	}
}

// onRowValueChanged propagates a slider move to the store
func (ui *RootUI) onRowValueChanged(rowID int, value int) {
	if err := ui.storeSvc.SetRowValue(rowID, value); err != nil {
		log.Printf("Failed to set value for row %d: %v", rowID, err)
	}
}

// onRowDelete removes a row via the store
func (ui *RootUI) onRowDelete(rowID int) {
	if err := ui.storeSvc.RemoveRow(rowID); err != nil {
		log.Printf("Failed to remove row %d: %v", rowID, err)
	}
}

// onDayUpdate handles day updates from the store service
func (ui *RootUI) onDayUpdate(day *model.Day) {
	fyne.Do(func() {
		ui.renderDay(day)
	})
}

// onHistoryChanged handles day file changes on disk
func (ui *RootUI) onHistoryChanged() {
	fyne.Do(func() {
		ui.refreshChart()
	})
}

// renderDay syncs the whole entry tab with a day snapshot
func (ui *RootUI) renderDay(day *model.Day) {
	ui.syncRowWidgets(day)

	// Progress header
	total := day.Total()
	displayTarget := day.DisplayTarget()
	ui.progressBar.Min = 0
	ui.progressBar.Max = float64(displayTarget)
	ui.progressBar.SetValue(float64(total))
	ui.progressLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProgressCaption), total, displayTarget))

	if day.IsComplete() {
		ui.hintLabel.SetText(ui.localization.GetText(KeyAllAtMax))
		ui.hintLabel.Importance = widget.SuccessImportance

		if !ui.wasComplete && ui.settings.GetNotifyOnComplete() {
			ui.sendCompletionNotification()
		}
	} else if len(day.Rows) > 0 {
		ui.hintLabel.SetText(ui.localization.GetText(KeyAdjustHint))
		ui.hintLabel.Importance = widget.MediumImportance
	} else {
		ui.hintLabel.SetText("")
	}
	ui.hintLabel.Refresh()
	ui.wasComplete = day.IsComplete()

	// Date bar and footer
	isoDate := day.Date.Format(DateEntryLayout)
	if ui.dateEntry.Text != isoDate {
		ui.dateEntry.SetText(isoDate)
	}
	ui.selectedDateLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySelectedDate), isoDate))
	ui.currentInputLabel.SetText(ui.localization.GetText(KeyCurrentInput) + "\n" + dumpRows(day))
}

// syncRowWidgets reconciles the row widgets with the day snapshot in place,
// so the entry being typed into is never rebuilt mid-edit
func (ui *RootUI) syncRowWidgets(day *model.Day) {
	existing := make(map[int]*EntryRow, len(ui.rowWidgets))
	for _, rw := range ui.rowWidgets {
		existing[rw.RowID()] = rw
	}

	widgets := make([]*EntryRow, 0, len(day.Rows))
	changed := len(day.Rows) != len(ui.rowWidgets)
	for i, row := range day.Rows {
		if rw, ok := existing[row.ID]; ok {
			rw.UpdateRow(row)
			if i >= len(ui.rowWidgets) || ui.rowWidgets[i] != rw {
				changed = true
			}
			widgets = append(widgets, rw)
			continue
		}

		rw := NewEntryRow(row, ui.localization)
		rw.SetCallbacks(ui.onRowTextChanged, ui.onRowValueChanged, ui.onRowDelete)
		widgets = append(widgets, rw)
		changed = true
	}

	ui.rowWidgets = widgets
	if changed {
		ui.rowsBox.Objects = nil
		for _, rw := range widgets {
			ui.rowsBox.Add(rw)
		}
		ui.rowsBox.Refresh()
	}
}

// dumpRows renders the day's rows as indented JSON, like the original page footer
func dumpRows(day *model.Day) string {
	data, err := json.MarshalIndent(day.Rows, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

// refreshChart reloads history and redraws the chart tab
func (ui *RootUI) refreshChart() {
	end := ui.storeSvc.Day().Date
	days := ui.settings.GetHistoryDays()

	summaries, err := ui.storeSvc.History(end, days)
	if err != nil {
		log.Printf("Failed to load history: %v", err)
		return
	}

	ui.updateSeriesOptions(summaries)
	ui.chart.SetData(summaries, ui.currentSeries)
}

// updateSeriesOptions rebuilds the series selector: total plus one entry per
// row position present anywhere in the window
func (ui *RootUI) updateSeriesOptions(summaries []model.DaySummary) {
	maxRows := model.MaxRowCount(summaries)

	options := []int{SeriesTotal}
	for pos := 0; pos < maxRows; pos++ {
		options = append(options, pos)
	}

	labels := make([]string, 0, len(options))
	for _, series := range options {
		labels = append(labels, seriesLabel(ui.localization, series))
	}

	ui.seriesOptions = options
	ui.seriesSelect.Options = labels

	// Clamp the selection if the window shrank below the chosen position
	if ui.currentSeries >= maxRows {
		ui.currentSeries = SeriesTotal
	}
	ui.seriesSelect.Selected = seriesLabel(ui.localization, ui.currentSeries)
	ui.seriesSelect.Refresh()
}

// onSeriesSelected handles a chart series choice
func (ui *RootUI) onSeriesSelected(label string) {
	for i, option := range ui.seriesOptions {
		if seriesLabel(ui.localization, option) == label {
			ui.currentSeries = ui.seriesOptions[i]
			ui.settings.SetLastSelectedSeries(ui.currentSeries)
			ui.refreshChart()
			return
		}
	}
}

// sendCompletionNotification notifies once when every slider reaches maximum
func (ui *RootUI) sendCompletionNotification() {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: IconParty + " " + ui.localization.GetText(KeyAllAtMax),
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// onExport starts a background export of the current chart window
func (ui *RootUI) onExport() {
	end := ui.storeSvc.Day().Date
	days := ui.settings.GetHistoryDays()

	// Flush first so the export reads what the user sees
	if err := ui.storeSvc.Flush(); err != nil {
		log.Printf("Flush before export failed: %v", err)
	}

	task, err := ui.exportSvc.StartExport(end, days)
	if err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("Export started: id=%s window=%s", task.ID, task.GetDisplayName())
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportStarted)), ui.window.Canvas())
}

// onExportUpdate handles export task updates from the export service
func (ui *RootUI) onExportUpdate(task *model.ExportTask) {
	log.Printf("Export update: id=%s status=%s progress=%.2f", task.ID, task.Status, task.Progress)

	switch task.Status {
	case model.TaskStatusCompleted:
		fyne.Do(func() {
			ui.showExportToast(task)
		})
	case model.TaskStatusError:
		fyne.Do(func() {
			widget.ShowPopUp(
				widget.NewLabel(ui.localization.GetText(KeyExportFailed)+": "+task.LastError),
				ui.window.Canvas(),
			)
		})
	}
}

// showExportToast shows an in-app toast for a finished export with a reveal action
func (ui *RootUI) showExportToast(task *model.ExportTask) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyExportCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(task.GetDisplayName())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		if err := platform.OpenFileInManager(task.OutputPath); err != nil {
			log.Printf("Failed to reveal export %s: %v", task.OutputPath, err)
		}
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		if err := platform.OpenFileWithDefaultApp(task.OutputPath); err != nil {
			log.Printf("Failed to open export %s: %v", task.OutputPath, err)
		}
	})

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(
		header,
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}
