package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDay_Total(t *testing.T) {
	tests := []struct {
		values   []int
		expected int
	}{
		{nil, 0},
		{[]int{0}, 0},
		{[]int{100}, 100},
		{[]int{10, 20, 30}, 60},
		{[]int{100, 100, 100}, 300},
	}

	for _, test := range tests {
		day := NewDay(time.Now())
		for i, v := range test.values {
			day.Rows = append(day.Rows, &Row{ID: i, Value: v})
		}
		if total := day.Total(); total != test.expected {
			t.Errorf("Total() with values %v = %d, expected %d", test.values, total, test.expected)
		}
	}
}

func TestDay_Progress(t *testing.T) {
	tests := []struct {
		values   []int
		expected float64
	}{
		{nil, 0.0},
		{[]int{0}, 0.0},
		{[]int{50}, 0.5},
		{[]int{100}, 1.0},
		{[]int{100, 0}, 0.5},
		{[]int{100, 100}, 1.0},
	}

	for _, test := range tests {
		day := NewDay(time.Now())
		for i, v := range test.values {
			day.Rows = append(day.Rows, &Row{ID: i, Value: v})
		}
		if progress := day.Progress(); progress != test.expected {
			t.Errorf("Progress() with values %v = %f, expected %f", test.values, progress, test.expected)
		}
	}
}

func TestDay_DisplayTarget(t *testing.T) {
	tests := []struct {
		rows     int
		expected int
	}{
		{0, 100},
		{1, 100},
		{2, 200},
		{5, 500},
	}

	for _, test := range tests {
		day := NewDay(time.Now())
		for i := 0; i < test.rows; i++ {
			day.Rows = append(day.Rows, &Row{ID: i})
		}
		if target := day.DisplayTarget(); target != test.expected {
			t.Errorf("DisplayTarget() with %d rows = %d, expected %d", test.rows, target, test.expected)
		}
	}
}

func TestDay_IsComplete(t *testing.T) {
	tests := []struct {
		values   []int
		expected bool
	}{
		{nil, false},
		{[]int{0}, false},
		{[]int{100}, true},
		{[]int{100, 99}, false},
		{[]int{100, 100, 100}, true},
	}

	for _, test := range tests {
		day := NewDay(time.Now())
		for i, v := range test.values {
			day.Rows = append(day.Rows, &Row{ID: i, Value: v})
		}
		if complete := day.IsComplete(); complete != test.expected {
			t.Errorf("IsComplete() with values %v = %v, expected %v", test.values, complete, test.expected)
		}
	}
}

func TestRow_ClampValue(t *testing.T) {
	tests := []struct {
		value    int
		expected int
	}{
		{-10, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{250, 100},
	}

	for _, test := range tests {
		row := &Row{Value: test.value}
		row.ClampValue()
		if row.Value != test.expected {
			t.Errorf("ClampValue() with value %d = %d, expected %d", test.value, row.Value, test.expected)
		}
	}
}

func TestRow_DisplayText(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"", ""},
		{"  読書  ", "読書"},
		{"line1\nline2", "line1 line2"},
		{"a\tb\rc", "a b c"},
	}

	for _, test := range tests {
		row := &Row{Text: test.text}
		if got := row.DisplayText(); got != test.expected {
			t.Errorf("DisplayText() with %q = %q, expected %q", test.text, got, test.expected)
		}
	}
}

func TestRow_JSONShape(t *testing.T) {
	row := &Row{ID: 7, Text: "読書", Value: 60}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Failed to marshal row: %v", err)
	}

	expected := `{"text":"読書","slider":60}`
	if string(data) != expected {
		t.Errorf("Marshaled row = %s, expected %s", data, expected)
	}
}

func TestDay_RowByID(t *testing.T) {
	day := NewDay(time.Now())
	day.Rows = append(day.Rows, &Row{ID: 0, Text: "first"}, &Row{ID: 3, Text: "second"})

	if row := day.RowByID(3); row == nil || row.Text != "second" {
		t.Errorf("RowByID(3) = %+v, expected row with text 'second'", row)
	}

	if row := day.RowByID(99); row != nil {
		t.Errorf("RowByID(99) = %+v, expected nil", row)
	}
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2025, 6, 30, 18, 45, 12, 999, time.Local)
	midnight := Midnight(ts)

	if midnight.Hour() != 0 || midnight.Minute() != 0 || midnight.Second() != 0 {
		t.Errorf("Midnight(%v) = %v, expected time at 00:00:00", ts, midnight)
	}
	if midnight.Year() != 2025 || midnight.Month() != 6 || midnight.Day() != 30 {
		t.Errorf("Midnight(%v) changed the date: %v", ts, midnight)
	}
}
