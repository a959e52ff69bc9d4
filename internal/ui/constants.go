package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDelete   = "✕"
	IconPrevDay  = "◀"
	IconNextDay  = "▶"
	IconClose    = "×"
	IconParty    = "🎉"
)

// Text fragments
const (
	ProgressCaptionSeparator = " / "
	ValueLabelFormat         = "%3d"
	DateEntryLayout          = "2006-01-02"
	ChartDateFormat          = "01/02"
)

// Layout sizing (entry rows / chart)
const (
	DeleteButtonWidth float32 = 32
	SliderWidth       float32 = 220
	ValueLabelWidth   float32 = 40

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44

	ChartMinWidth   float32 = 480
	ChartMinHeight  float32 = 260
	ChartBarGap     float32 = 12
	ChartPadding    float32 = 16
	ChartAxisHeight float32 = 36
	ChartLabelH     float32 = 18
)

// Chart scale granularity: the axis ceiling is rounded up to this step
const ChartScaleStep = 50

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
