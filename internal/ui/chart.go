package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/benkyoapp/benkyo-controls/internal/model"
)

// SeriesTotal selects the daily total instead of a single row position
const SeriesTotal = -1

// BarChart renders one bar per day for the selected series: a row position's
// slider value, or the daily total
type BarChart struct {
	widget.BaseWidget

	summaries []model.DaySummary
	series    int // SeriesTotal or 0-based row position
}

// NewBarChart creates an empty bar chart
func NewBarChart() *BarChart {
	bc := &BarChart{series: SeriesTotal}
	bc.ExtendBaseWidget(bc)
	return bc
}

// SetData replaces the chart content and redraws
func (bc *BarChart) SetData(summaries []model.DaySummary, series int) {
	bc.summaries = summaries
	bc.series = series
	bc.Refresh()
}

// seriesValue extracts the charted value from one day summary
func (bc *BarChart) seriesValue(summary model.DaySummary) int {
	if bc.series == SeriesTotal {
		return summary.Total
	}
	return summary.ValueAt(bc.series)
}

// seriesValues extracts the charted value of every summary
func (bc *BarChart) seriesValues() []int {
	values := make([]int, 0, len(bc.summaries))
	for _, summary := range bc.summaries {
		values = append(values, bc.seriesValue(summary))
	}
	return values
}

// chartCeiling returns the axis maximum: the largest value rounded up to the
// next ChartScaleStep, never below minimum
func chartCeiling(values []int, minimum int) int {
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max < minimum {
		return minimum
	}
	if max%ChartScaleStep == 0 {
		return max
	}
	return (max/ChartScaleStep + 1) * ChartScaleStep
}

// CreateRenderer creates the widget renderer
func (bc *BarChart) CreateRenderer() fyne.WidgetRenderer {
	return &barChartRenderer{chart: bc}
}

// barChartRenderer draws the bars, value labels, date labels, and axis
type barChartRenderer struct {
	chart   *BarChart
	objects []fyne.CanvasObject

	bars        []*canvas.Rectangle
	valueLabels []*canvas.Text
	dateLabels  []*canvas.Text
	axis        *canvas.Line
	scaleLabel  *canvas.Text
}

// MinSize returns the minimum chart size
func (r *barChartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

// Refresh rebuilds the canvas objects from the current summaries
func (r *barChartRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.chart.Size())
	canvas.Refresh(r.chart)
}

// rebuild recreates bars and labels for the current data
func (r *barChartRenderer) rebuild() {
	r.bars = nil
	r.valueLabels = nil
	r.dateLabels = nil
	r.objects = nil

	barColor := theme.Color(theme.ColorNamePrimary)
	fullColor := theme.Color(theme.ColorNameSuccess)
	textColor := theme.Color(theme.ColorNameForeground)

	values := r.chart.seriesValues()
	ceiling := chartCeiling(values, model.SliderMax)

	r.axis = canvas.NewLine(textColor)
	r.axis.StrokeWidth = 1

	r.scaleLabel = canvas.NewText(strconv.Itoa(ceiling), textColor)
	r.scaleLabel.TextSize = theme.Size(theme.SizeNameCaptionText)

	for i, summary := range r.chart.summaries {
		value := values[i]

		bar := canvas.NewRectangle(barColor)
		if value > 0 && value >= ceiling {
			bar.FillColor = fullColor
		}
		r.bars = append(r.bars, bar)

		valueLabel := canvas.NewText(strconv.Itoa(value), textColor)
		valueLabel.TextSize = theme.Size(theme.SizeNameCaptionText)
		valueLabel.Alignment = fyne.TextAlignCenter
		r.valueLabels = append(r.valueLabels, valueLabel)

		dateLabel := canvas.NewText(summary.Date.Format(ChartDateFormat), textColor)
		dateLabel.TextSize = theme.Size(theme.SizeNameCaptionText)
		dateLabel.Alignment = fyne.TextAlignCenter
		r.dateLabels = append(r.dateLabels, dateLabel)
	}

	r.objects = append(r.objects, r.axis, r.scaleLabel)
	for i := range r.bars {
		r.objects = append(r.objects, r.bars[i], r.valueLabels[i], r.dateLabels[i])
	}
}

// Layout positions bars evenly across the width, scaled against the ceiling
func (r *barChartRenderer) Layout(size fyne.Size) {
	if r.axis != nil {
		baseline := size.Height - ChartAxisHeight
		r.axis.Position1 = fyne.NewPos(ChartPadding, baseline)
		r.axis.Position2 = fyne.NewPos(size.Width-ChartPadding, baseline)
	}
	if len(r.bars) == 0 {
		return
	}

	values := r.chart.seriesValues()
	ceiling := chartCeiling(values, model.SliderMax)

	baseline := size.Height - ChartAxisHeight
	plotTop := ChartPadding + ChartLabelH
	plotHeight := baseline - plotTop
	if plotHeight < 1 {
		plotHeight = 1
	}

	count := float32(len(r.bars))
	plotWidth := size.Width - 2*ChartPadding
	barWidth := (plotWidth - ChartBarGap*(count-1)) / count
	if barWidth < 1 {
		barWidth = 1
	}

	r.scaleLabel.Move(fyne.NewPos(ChartPadding, plotTop-ChartLabelH))

	for i, bar := range r.bars {
		barHeight := plotHeight * float32(values[i]) / float32(ceiling)

		x := ChartPadding + float32(i)*(barWidth+ChartBarGap)
		y := baseline - barHeight

		bar.Move(fyne.NewPos(x, y))
		bar.Resize(fyne.NewSize(barWidth, barHeight))

		valueLabel := r.valueLabels[i]
		valueLabel.Move(fyne.NewPos(x+barWidth/2, y-ChartLabelH))
		valueLabel.Resize(fyne.NewSize(0, ChartLabelH))

		dateLabel := r.dateLabels[i]
		dateLabel.Move(fyne.NewPos(x+barWidth/2, baseline+4))
		dateLabel.Resize(fyne.NewSize(0, ChartLabelH))
	}
}

// Objects returns the canvas objects
func (r *barChartRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		r.rebuild()
	}
	return r.objects
}

// Destroy cleans up the renderer
func (r *barChartRenderer) Destroy() {}

// seriesLabel formats the selector label for a series
func seriesLabel(localization *Localization, series int) string {
	if series == SeriesTotal {
		return localization.GetText(KeySeriesTotal)
	}
	return fmt.Sprintf(localization.GetText(KeySeriesRow), series+1)
}
