package model

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Task represents a single to-do entry
type Task struct {
	ID        string // opaque unique id, immutable
	Title     string // trimmed, never blank
	Completed bool   // set when the user marks the task done
}

// NewTask creates an active task with a fresh random id.
// The title must already be normalized.
func NewTask(title string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// State returns the display state derived from the completion flag
func (t Task) State() TaskState {
	if t.Completed {
		return TaskStateCompleted
	}
	return TaskStateActive
}

// NormalizeTitle strips leading and trailing whitespace and newlines.
// An empty result means the input carried no title.
func NormalizeTitle(raw string) string {
	return strings.TrimFunc(raw, unicode.IsSpace)
}

// GetDisplayTitle returns the title with inner line breaks and tabs folded
// into single spaces so a row always renders on one line
func (t Task) GetDisplayTitle() string {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
	return replacer.Replace(t.Title)
}
