package model

import "time"

// DaySummary is one chart sample: the ordered slider values of a single date
type DaySummary struct {
	Date   time.Time
	Values []int
	Texts  []string
	Total  int
}

// NewDaySummary builds a summary from a day's rows
func NewDaySummary(day *Day) DaySummary {
	summary := DaySummary{Date: day.Date}
	for _, row := range day.Rows {
		summary.Values = append(summary.Values, row.Value)
		summary.Texts = append(summary.Texts, row.DisplayText())
	}
	summary.Total = day.Total()
	return summary
}

// ValueAt returns the slider value at the given row position (0-based).
// Positions past the end of a short or missing day read as 0.
func (ds DaySummary) ValueAt(pos int) int {
	if pos < 0 || pos >= len(ds.Values) {
		return 0
	}
	return ds.Values[pos]
}

// TextAt returns the row text at the given position, or "" past the end
func (ds DaySummary) TextAt(pos int) string {
	if pos < 0 || pos >= len(ds.Texts) {
		return ""
	}
	return ds.Texts[pos]
}

// HistoryWindow returns the dates of the window ending at end, oldest first
func HistoryWindow(end time.Time, days int) []time.Time {
	if days < 1 {
		days = 1
	}
	end = Midnight(end)
	dates := make([]time.Time, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, end.AddDate(0, 0, -i))
	}
	return dates
}

// MaxRowCount returns the longest row list across the summaries
func MaxRowCount(summaries []DaySummary) int {
	max := 0
	for _, summary := range summaries {
		if len(summary.Values) > max {
			max = len(summary.Values)
		}
	}
	return max
}
