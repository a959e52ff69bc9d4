package store

// Package store implements per-date JSON persistence for day rows. It manages
// the current day's state, session row ids, debounced atomic saves, history
// windows for the chart, and reloading when day files change on disk.
