package model

// Package model defines domain data structures used across the app: to-do
// tasks, their display state, and positional offsets used for batch removal.
// Structures are plain values so the UI can render copies without locking.
