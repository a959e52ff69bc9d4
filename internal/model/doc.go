package model

// Package model defines domain data structures used across the app: day rows,
// chart summaries, and export task entities. Structures are designed for
// direct binding in the UI and explicit state transitions.
