package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benkyoapp/benkyo-controls/internal/model"
	"github.com/benkyoapp/benkyo-controls/internal/platform"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	service, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	t.Cleanup(func() { service.Close() })
	return service
}

func TestNewService(t *testing.T) {
	tempDir := t.TempDir()
	service, err := NewService(filepath.Join(tempDir, "data"))
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	// Data directory is created
	if _, err := os.Stat(service.DataDirectory()); err != nil {
		t.Fatalf("Data directory was not created: %v", err)
	}

	// A fresh day is seeded with exactly one empty row
	day := service.Day()
	if len(day.Rows) != 1 {
		t.Fatalf("Expected 1 seeded row, got %d", len(day.Rows))
	}
	if day.Rows[0].Text != "" || day.Rows[0].Value != 0 {
		t.Errorf("Seeded row should be empty, got %+v", day.Rows[0])
	}

	// Merely opening a date must not create its file
	if _, err := os.Stat(filepath.Join(service.DataDirectory(), platform.DayFileName(day.Date))); !os.IsNotExist(err) {
		t.Error("Day file should not exist before the first edit")
	}
}

func TestAddRow_MonotonicIDs(t *testing.T) {
	service := newTestService(t)

	first := service.Day().Rows[0]
	second := service.AddRow()
	third := service.AddRow()

	if second.ID <= first.ID {
		t.Errorf("Expected id %d > %d", second.ID, first.ID)
	}
	if third.ID <= second.ID {
		t.Errorf("Expected id %d > %d", third.ID, second.ID)
	}

	if rows := service.Day().Rows; len(rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(rows))
	}
}

func TestRemoveRow(t *testing.T) {
	service := newTestService(t)

	first := service.Day().Rows[0]
	second := service.AddRow()
	third := service.AddRow()

	if err := service.SetRowText(second.ID, "middle"); err != nil {
		t.Fatalf("Failed to set text: %v", err)
	}

	// Remove the middle row; order of the rest is preserved
	if err := service.RemoveRow(second.ID); err != nil {
		t.Fatalf("Failed to remove row: %v", err)
	}
	rows := service.Day().Rows
	if len(rows) != 2 || rows[0].ID != first.ID || rows[1].ID != third.ID {
		t.Errorf("Unexpected rows after removal: %+v", rows)
	}

	// Removing an unknown id fails
	if err := service.RemoveRow(second.ID); err == nil {
		t.Error("Expected error for removed id, got nil")
	}
}

func TestRemoveRow_LastRowReseeds(t *testing.T) {
	service := newTestService(t)

	only := service.Day().Rows[0]
	if err := service.RemoveRow(only.ID); err != nil {
		t.Fatalf("Failed to remove row: %v", err)
	}

	rows := service.Day().Rows
	if len(rows) != 1 {
		t.Fatalf("Expected day to reseed one row, got %d", len(rows))
	}
	if rows[0].ID == only.ID {
		t.Error("Reseeded row must not reuse a removed id")
	}
	if rows[0].Text != "" || rows[0].Value != 0 {
		t.Errorf("Reseeded row should be empty, got %+v", rows[0])
	}
}

func TestSetRowValue_Clamping(t *testing.T) {
	service := newTestService(t)
	row := service.Day().Rows[0]

	tests := []struct {
		value    int
		expected int
	}{
		{50, 50},
		{-20, 0},
		{180, 100},
		{100, 100},
	}

	for _, test := range tests {
		if err := service.SetRowValue(row.ID, test.value); err != nil {
			t.Fatalf("Failed to set value %d: %v", test.value, err)
		}
		if got := service.Day().Rows[0].Value; got != test.expected {
			t.Errorf("SetRowValue(%d) stored %d, expected %d", test.value, got, test.expected)
		}
	}

	if err := service.SetRowValue(9999, 10); err == nil {
		t.Error("Expected error for unknown row id, got nil")
	}
}

func TestFlush_WritesDayFile(t *testing.T) {
	service := newTestService(t)
	row := service.Day().Rows[0]

	if err := service.SetRowText(row.ID, "読書"); err != nil {
		t.Fatalf("Failed to set text: %v", err)
	}
	if err := service.SetRowValue(row.ID, 60); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	if err := service.Flush(); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	path := filepath.Join(service.DataDirectory(), platform.DayFileName(service.Day().Date))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Day file was not written: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("Day file is not valid JSON: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 persisted row, got %d", len(rows))
	}
	if rows[0]["text"] != "読書" || rows[0]["slider"] != float64(60) {
		t.Errorf("Unexpected persisted row: %v", rows[0])
	}

	// No leftover temp files
	entries, _ := os.ReadDir(service.DataDirectory())
	for _, entry := range entries {
		if _, err := platform.ParseDayFileName(entry.Name()); err != nil {
			t.Errorf("Unexpected file in data dir: %s", entry.Name())
		}
	}
}

func TestSelectDate_RoundTrip(t *testing.T) {
	service := newTestService(t)
	today := service.Day().Date
	yesterday := today.AddDate(0, 0, -1)

	row := service.Day().Rows[0]
	if err := service.SetRowText(row.ID, "英語"); err != nil {
		t.Fatalf("Failed to set text: %v", err)
	}
	if err := service.SetRowValue(row.ID, 80); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	// Switching dates flushes the dirty day and loads a fresh one
	day, err := service.SelectDate(yesterday)
	if err != nil {
		t.Fatalf("Failed to select date: %v", err)
	}
	if !day.Date.Equal(model.Midnight(yesterday)) {
		t.Errorf("Expected date %v, got %v", model.Midnight(yesterday), day.Date)
	}
	if len(day.Rows) != 1 || day.Rows[0].Text != "" {
		t.Errorf("Expected fresh empty day, got %+v", day.Rows)
	}

	// Coming back restores the saved rows with fresh session ids
	day, err = service.SelectDate(today)
	if err != nil {
		t.Fatalf("Failed to select date: %v", err)
	}
	if len(day.Rows) != 1 || day.Rows[0].Text != "英語" || day.Rows[0].Value != 80 {
		t.Errorf("Expected restored row, got %+v", day.Rows)
	}
	if day.Rows[0].ID == row.ID {
		t.Error("Reloaded rows must receive fresh session ids")
	}
}

func TestHistory(t *testing.T) {
	service := newTestService(t)
	today := service.Day().Date

	// Two saved past days, written directly as files
	writeDay := func(date time.Time, values ...int) {
		rows := make([]*model.Row, 0, len(values))
		for _, v := range values {
			rows = append(rows, &model.Row{Value: v})
		}
		data, err := json.Marshal(rows)
		if err != nil {
			t.Fatalf("Failed to marshal rows: %v", err)
		}
		path := filepath.Join(service.DataDirectory(), platform.DayFileName(date))
		if err := os.WriteFile(path, data, platform.DefaultFilePermissions); err != nil {
			t.Fatalf("Failed to write day file: %v", err)
		}
	}
	writeDay(today.AddDate(0, 0, -2), 30, 40)
	writeDay(today.AddDate(0, 0, -1), 100)

	// Unsaved edit on the current day must be visible in the history
	row := service.Day().Rows[0]
	if err := service.SetRowValue(row.ID, 55); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	summaries, err := service.History(today, 7)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	if len(summaries) != 7 {
		t.Fatalf("Expected 7 summaries, got %d", len(summaries))
	}

	// Oldest first; days without files read as empty
	for i := 0; i < 4; i++ {
		if summaries[i].Total != 0 || len(summaries[i].Values) != 0 {
			t.Errorf("Expected empty summary at index %d, got %+v", i, summaries[i])
		}
	}
	if summaries[4].Total != 70 || summaries[4].ValueAt(1) != 40 {
		t.Errorf("Unexpected summary for -2 days: %+v", summaries[4])
	}
	if summaries[5].Total != 100 {
		t.Errorf("Unexpected summary for -1 day: %+v", summaries[5])
	}
	if summaries[6].Total != 55 {
		t.Errorf("Expected unsaved current-day edit in history, got %+v", summaries[6])
	}
}

func TestSetCallbacks_SafeWhileWatching(t *testing.T) {
	service := newTestService(t)

	if err := service.StartWatching(); err != nil {
		t.Fatalf("Failed to start watching: %v", err)
	}

	// Rewire the callbacks while the watcher is delivering events; the race
	// detector flags any unsynchronized access to the callback fields
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			service.SetHistoryCallback(func() {})
			service.SetUpdateCallback(func(*model.Day) {})
		}
	}()

	other := service.Day().Date.AddDate(0, 0, -3)
	path := filepath.Join(service.DataDirectory(), platform.DayFileName(other))
	for i := 0; i < 20; i++ {
		if err := os.WriteFile(path, []byte(`[{"text":"x","slider":5}]`), platform.DefaultFilePermissions); err != nil {
			t.Fatalf("Failed to write external file: %v", err)
		}
	}

	<-done
}

func TestStartWatching_ExternalChange(t *testing.T) {
	service := newTestService(t)

	historyChanged := make(chan struct{}, 1)
	service.SetHistoryCallback(func() {
		select {
		case historyChanged <- struct{}{}:
		default:
		}
	})

	if err := service.StartWatching(); err != nil {
		t.Fatalf("Failed to start watching: %v", err)
	}

	// External write to another date's file must trigger a history refresh
	other := service.Day().Date.AddDate(0, 0, -3)
	path := filepath.Join(service.DataDirectory(), platform.DayFileName(other))
	if err := os.WriteFile(path, []byte(`[{"text":"x","slider":10}]`), platform.DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to write external file: %v", err)
	}

	select {
	case <-historyChanged:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected history callback after external day file change")
	}
}
