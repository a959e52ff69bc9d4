package store

import (
	"time"

	"github.com/benkyoapp/benkyo-controls/internal/model"
)

// Recorder defines the interface for the day store service.
type Recorder interface {
	SetUpdateCallback(func(*model.Day))
	SetHistoryCallback(func())
	DataDirectory() string
	Day() *model.Day
	SelectDate(date time.Time) (*model.Day, error)
	AddRow() *model.Row
	RemoveRow(id int) error
	SetRowText(id int, text string) error
	SetRowValue(id int, value int) error
	Flush() error
	History(end time.Time, days int) ([]model.DaySummary, error)

	// StartWatching begins observing the data directory for external edits
	StartWatching() error

	Close() error
}
