package model

import (
	"strings"
	"time"
)

// Slider bounds
const (
	SliderMin = 0
	SliderMax = 100
)

// Row represents a single (text, slider value) entry within a day
type Row struct {
	ID    int    `json:"-"` // session-local, monotonically increasing, never reused
	Text  string `json:"text"`
	Value int    `json:"slider"` // SliderMin to SliderMax
}

// ClampValue clamps the slider value into the valid range
func (r *Row) ClampValue() {
	if r.Value < SliderMin {
		r.Value = SliderMin
	}
	if r.Value > SliderMax {
		r.Value = SliderMax
	}
}

// DisplayText returns the trimmed text with control characters collapsed
func (r *Row) DisplayText() string {
	text := strings.ReplaceAll(r.Text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}

// Day represents the ordered list of rows recorded for one calendar date
type Day struct {
	Date time.Time
	Rows []*Row
}

// NewDay creates an empty day for the given date (normalized to midnight)
func NewDay(date time.Time) *Day {
	return &Day{Date: Midnight(date)}
}

// Midnight normalizes a timestamp to local midnight
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Total returns the sum of all slider values
func (d *Day) Total() int {
	total := 0
	for _, row := range d.Rows {
		total += row.Value
	}
	return total
}

// TargetTotal returns the combined slider maximum (rows * SliderMax), 0 when empty
func (d *Day) TargetTotal() int {
	return len(d.Rows) * SliderMax
}

// DisplayTarget returns the target used in the progress caption, never below SliderMax
func (d *Day) DisplayTarget() int {
	target := d.TargetTotal()
	if target < SliderMax {
		return SliderMax
	}
	return target
}

// Progress returns total/target normalized to 0.0..1.0, 0 when there are no rows
func (d *Day) Progress() float64 {
	target := d.TargetTotal()
	if target == 0 {
		return 0.0
	}
	progress := float64(d.Total()) / float64(target)
	if progress > 1.0 {
		progress = 1.0
	}
	return progress
}

// IsComplete reports whether every slider sits at its maximum
func (d *Day) IsComplete() bool {
	return len(d.Rows) > 0 && d.Total() == d.TargetTotal()
}

// Clone returns a deep copy safe to hand to the UI thread
func (d *Day) Clone() *Day {
	clone := &Day{Date: d.Date, Rows: make([]*Row, 0, len(d.Rows))}
	for _, row := range d.Rows {
		copied := *row
		clone.Rows = append(clone.Rows, &copied)
	}
	return clone
}

// RowByID returns the row with the given session id, or nil
func (d *Day) RowByID(id int) *Row {
	for _, row := range d.Rows {
		if row.ID == id {
			return row
		}
	}
	return nil
}
