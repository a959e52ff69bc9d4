package model

import (
	"path/filepath"
	"time"
)

// ExportTask represents a single background export of a date window
type ExportTask struct {
	ID         string
	Start      time.Time // first exported date (inclusive)
	End        time.Time // last exported date (inclusive)
	OutputPath string    // path to the written file
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Days returns the number of dates covered by the export window
func (et *ExportTask) Days() int {
	if et.End.Before(et.Start) {
		return 0
	}
	return int(Midnight(et.End).Sub(Midnight(et.Start)).Hours()/24) + 1
}

// GetDisplayName returns the output filename, or the window when no file exists yet
func (et *ExportTask) GetDisplayName() string {
	if et.OutputPath != "" {
		return filepath.Base(et.OutputPath)
	}
	return et.Start.Format("2006-01-02") + " .. " + et.End.Format("2006-01-02")
}
