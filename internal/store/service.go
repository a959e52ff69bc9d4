package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/benkyoapp/benkyo-controls/internal/model"
	"github.com/benkyoapp/benkyo-controls/internal/platform"
)

// Autosave timing
const (
	SaveDebounce = 400 * time.Millisecond
)

// Temp file naming for atomic writes
const (
	TempSuffixFormat = "%s.tmp-%s"
)

// Service manages the current day and its persistence to per-date JSON files
type Service struct {
	dataDir string

	mu        sync.RWMutex
	day       *model.Day
	nextRowID int
	dirty     bool
	lastSave  time.Time

	saveTimer *time.Timer

	onUpdate        func(*model.Day) // callback for UI updates
	onHistoryChange func()           // callback for chart refreshes

	watcher *dirWatcher
}

// NewService creates a day store rooted at dataDir and loads today's rows
func NewService(dataDir string) (*Service, error) {
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		return nil, fmt.Errorf("failed to ensure data dir: %w", err)
	}

	s := &Service{dataDir: dataDir}
	s.mu.Lock()
	s.loadDayLocked(time.Now())
	s.mu.Unlock()

	return s, nil
}

// SetUpdateCallback sets the callback function for current-day updates
func (s *Service) SetUpdateCallback(callback func(*model.Day)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetHistoryCallback sets the callback invoked when any day file changes on disk
func (s *Service) SetHistoryCallback(callback func()) {
	s.mu.Lock()
	s.onHistoryChange = callback
	s.mu.Unlock()
}

// DataDirectory returns the directory holding the day files
func (s *Service) DataDirectory() string {
	return s.dataDir
}

// Day returns a snapshot of the current day
func (s *Service) Day() *model.Day {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.day.Clone()
}

// SelectDate flushes the current day if dirty and loads the given date
func (s *Service) SelectDate(date time.Time) (*model.Day, error) {
	s.mu.Lock()

	if s.dirty {
		if err := s.saveLocked(); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	s.loadDayLocked(date)

	snapshot := s.day.Clone()
	s.mu.Unlock()

	log.Printf("Selected date %s with %d rows", snapshot.Date.Format(platform.DayFileLayout), len(snapshot.Rows))
	s.notifyUpdate(snapshot)
	return snapshot, nil
}

// AddRow appends a fresh empty row and returns its snapshot
func (s *Service) AddRow() *model.Row {
	s.mu.Lock()
	row := s.seedRowLocked()
	s.markDirtyLocked()
	snapshot := s.day.Clone()
	added := *row
	s.mu.Unlock()

	log.Printf("Added row %d (total rows: %d)", added.ID, len(snapshot.Rows))
	s.notifyUpdate(snapshot)
	return &added
}

// RemoveRow deletes the row with the given id, preserving order.
// Removing the final row reseeds one empty row so the day is never blank.
func (s *Service) RemoveRow(id int) error {
	s.mu.Lock()

	index := -1
	for i, row := range s.day.Rows {
		if row.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return fmt.Errorf("row not found: %d", id)
	}

	s.day.Rows = append(s.day.Rows[:index], s.day.Rows[index+1:]...)
	if len(s.day.Rows) == 0 {
		s.seedRowLocked()
	}
	s.markDirtyLocked()
	snapshot := s.day.Clone()
	s.mu.Unlock()

	log.Printf("Removed row %d (remaining rows: %d)", id, len(snapshot.Rows))
	s.notifyUpdate(snapshot)
	return nil
}

// SetRowText updates the text of the row with the given id
func (s *Service) SetRowText(id int, text string) error {
	s.mu.Lock()
	row := s.day.RowByID(id)
	if row == nil {
		s.mu.Unlock()
		return fmt.Errorf("row not found: %d", id)
	}
	if row.Text == text {
		s.mu.Unlock()
		return nil
	}
	row.Text = text
	s.markDirtyLocked()
	snapshot := s.day.Clone()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
	return nil
}

// SetRowValue updates the slider value of the row with the given id, clamped to 0..100
func (s *Service) SetRowValue(id int, value int) error {
	s.mu.Lock()
	row := s.day.RowByID(id)
	if row == nil {
		s.mu.Unlock()
		return fmt.Errorf("row not found: %d", id)
	}
	row.Value = value
	row.ClampValue()
	s.markDirtyLocked()
	snapshot := s.day.Clone()
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
	return nil
}

// Flush writes the current day to disk immediately if it has unsaved changes
func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	if !s.dirty {
		return nil
	}
	return s.saveLocked()
}

// History returns summaries for the window of the given length ending at end,
// oldest first. Missing day files read as empty days; the in-memory current
// day wins over its file so unsaved edits chart correctly.
func (s *Service) History(end time.Time, days int) ([]model.DaySummary, error) {
	s.mu.RLock()
	current := s.day.Clone()
	s.mu.RUnlock()

	summaries := make([]model.DaySummary, 0, days)
	for _, date := range model.HistoryWindow(end, days) {
		if date.Equal(current.Date) {
			summaries = append(summaries, model.NewDaySummary(current))
			continue
		}

		day, err := s.readDayFile(date)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, model.NewDaySummary(day))
	}
	return summaries, nil
}

// Close flushes pending changes and stops the directory watcher
func (s *Service) Close() error {
	if s.watcher != nil {
		s.watcher.stop()
	}
	return s.Flush()
}

// loadDayLocked replaces the current day with the content of the date's file.
// A missing file yields a fresh day. The loaded day always has at least one row.
func (s *Service) loadDayLocked(date time.Time) {
	day, err := s.readDayFile(date)
	if err != nil {
		log.Printf("Failed to read day file for %s: %v", date.Format(platform.DayFileLayout), err)
		day = model.NewDay(date)
	}

	// Ids are session state; reassign on every load
	for _, row := range day.Rows {
		row.ID = s.nextRowID
		s.nextRowID++
		row.ClampValue()
	}

	s.day = day
	s.dirty = false
	if len(s.day.Rows) == 0 {
		// Seeding the initial empty row does not count as an edit,
		// so merely viewing a date never creates its file.
		s.seedRowLocked()
		s.dirty = false
	}
}

// seedRowLocked appends an empty row with the next session id
func (s *Service) seedRowLocked() *model.Row {
	row := &model.Row{ID: s.nextRowID}
	s.nextRowID++
	s.day.Rows = append(s.day.Rows, row)
	return row
}

// markDirtyLocked flags unsaved changes and (re)schedules the debounced save
func (s *Service) markDirtyLocked() {
	s.dirty = true
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(SaveDebounce, func() {
		if err := s.Flush(); err != nil {
			log.Printf("Autosave failed: %v", err)
		}
	})
}

// dayFilePath returns the absolute path of the date's day file
func (s *Service) dayFilePath(date time.Time) string {
	return filepath.Join(s.dataDir, platform.DayFileName(date))
}

// readDayFile loads the ordered rows of one date; a missing file is an empty day
func (s *Service) readDayFile(date time.Time) (*model.Day, error) {
	day := model.NewDay(date)

	data, err := os.ReadFile(s.dayFilePath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return day, nil
		}
		return nil, fmt.Errorf("failed to read day file: %w", err)
	}

	if err := json.Unmarshal(data, &day.Rows); err != nil {
		return nil, fmt.Errorf("failed to parse day file %s: %w", platform.DayFileName(date), err)
	}
	for _, row := range day.Rows {
		row.ClampValue()
	}
	return day, nil
}

// saveLocked writes the current day atomically: temp file, then rename
func (s *Service) saveLocked() error {
	data, err := json.MarshalIndent(s.day.Rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode day: %w", err)
	}

	path := s.dayFilePath(s.day.Date)
	tempPath := fmt.Sprintf(TempSuffixFormat, path, tempToken())

	if err := os.WriteFile(tempPath, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace day file: %w", err)
	}

	s.dirty = false
	s.lastSave = time.Now()
	log.Printf("Saved %s (%d rows, total %d)", platform.DayFileName(s.day.Date), len(s.day.Rows), s.day.Total())
	return nil
}

// notifyUpdate calls the update callback if set. The callback runs outside
// the lock so it may call back into the service.
func (s *Service) notifyUpdate(day *model.Day) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(day)
	}
}

// notifyHistoryChange calls the history callback if set
func (s *Service) notifyHistoryChange() {
	s.mu.RLock()
	callback := s.onHistoryChange
	s.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// tempToken generates a unique temp-file token using UUID v7 for better
// uniqueness and time ordering
func tempToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
