package export

// Package export writes CSV snapshots of a date window in the background.
// It manages export task lifecycle and progress propagation to the UI.
