package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/benkyoapp/benkyo-controls/internal/model"
)

// EntryRow is one editable (text, slider) line in the entry tab
type EntryRow struct {
	widget.BaseWidget

	row          *model.Row
	localization *Localization

	// UI components
	deleteBtn  *widget.Button
	textEntry  *widget.Entry
	valueLabel *widget.Label
	slider     *widget.Slider

	// Suppresses callbacks while the widget is being synced from a snapshot
	updating bool

	// Callbacks
	onTextChanged  func(rowID int, text string)
	onValueChanged func(rowID int, value int)
	onDelete       func(rowID int)
}

// NewEntryRow creates a new entry row widget for the given row snapshot
func NewEntryRow(row *model.Row, localization *Localization) *EntryRow {
	if row == nil {
		log.Printf("Warning: NewEntryRow called with nil row")
		row = &model.Row{}
	}

	er := &EntryRow{
		row:          row,
		localization: localization,
	}
	er.ExtendBaseWidget(er)
	er.createUI()
	er.updateFromRow()
	return er
}

// SetCallbacks sets the edit and delete callbacks
func (er *EntryRow) SetCallbacks(
	onTextChanged func(rowID int, text string),
	onValueChanged func(rowID int, value int),
	onDelete func(rowID int),
) {
	er.onTextChanged = onTextChanged
	er.onValueChanged = onValueChanged
	er.onDelete = onDelete
}

// RowID returns the session id of the row this widget renders
func (er *EntryRow) RowID() int {
	return er.row.ID
}

// UpdateRow syncs the widget with a fresh row snapshot
func (er *EntryRow) UpdateRow(row *model.Row) {
	if row == nil {
		log.Printf("Warning: UpdateRow called with nil row for row %d", er.row.ID)
		return
	}

	er.row = row
	er.updateFromRow()
	er.Refresh()
}

// createUI creates the UI components
func (er *EntryRow) createUI() {
	er.deleteBtn = widget.NewButton(IconDelete, func() {
		if er.onDelete != nil {
			er.onDelete(er.row.ID)
		}
	})
	er.deleteBtn.Importance = widget.LowImportance

	er.textEntry = widget.NewEntry()
	er.textEntry.SetPlaceHolder(er.localization.GetText(KeyTextPlaceholder))
	er.textEntry.OnChanged = func(text string) {
		if er.updating {
			return
		}
		if er.onTextChanged != nil {
			er.onTextChanged(er.row.ID, text)
		}
	}

	er.valueLabel = widget.NewLabel("")
	er.valueLabel.TextStyle = fyne.TextStyle{Monospace: true}
	er.valueLabel.Alignment = fyne.TextAlignTrailing

	er.slider = widget.NewSlider(model.SliderMin, model.SliderMax)
	er.slider.Step = 1
	er.slider.OnChanged = func(value float64) {
		er.valueLabel.SetText(fmt.Sprintf(ValueLabelFormat, int(value)))
		if er.updating {
			return
		}
		if er.onValueChanged != nil {
			er.onValueChanged(er.row.ID, int(value))
		}
	}
}

// updateFromRow updates UI components based on the row snapshot
func (er *EntryRow) updateFromRow() {
	er.updating = true

	if er.textEntry.Text != er.row.Text {
		er.textEntry.SetText(er.row.Text)
	}
	if int(er.slider.Value) != er.row.Value {
		er.slider.SetValue(float64(er.row.Value))
	}
	er.valueLabel.SetText(fmt.Sprintf(ValueLabelFormat, er.row.Value))

	er.updating = false
}

// CreateRenderer creates the widget renderer
func (er *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	sliderCell := container.NewGridWrap(fyne.NewSize(SliderWidth, er.slider.MinSize().Height), er.slider)
	valueCell := container.NewGridWrap(fyne.NewSize(ValueLabelWidth, er.valueLabel.MinSize().Height), er.valueLabel)
	right := container.NewHBox(sliderCell, valueCell)

	line := container.NewBorder(nil, nil, er.deleteBtn, right, er.textEntry)

	return widget.NewSimpleRenderer(line)
}
