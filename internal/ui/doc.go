// Package ui contains the Fyne user interface: the root window with its
// entry and chart tabs, the per-row editor widget, the bar chart, the
// settings dialog, localization, and the compact theme.
package ui
