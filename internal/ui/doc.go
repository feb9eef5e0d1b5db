package ui

// Package ui contains the Fyne-based user interface for the to-do list.
// It renders the add field and the active and completed sections, and turns
// taps and swipes into calls on the task list controller. All UI strings are
// localized via Localization.
