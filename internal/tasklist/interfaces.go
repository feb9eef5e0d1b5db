package tasklist

import (
	"time"

	"github.com/ytget/todo/internal/model"
)

// Manager defines the interface for the task list controller.
type Manager interface {
	SetUpdateCallback(func(Snapshot))

	// SetInput replaces the pending-title buffer
	SetInput(text string)
	Input() string

	Add(rawTitle string) (model.Task, bool)
	Submit() (model.Task, bool)
	Complete(id string)
	Delete(list ListKind, offsets model.Offsets) error

	Active() []model.Task
	Completed() []model.Task
	Snapshot() Snapshot
}

// Scheduler runs fn once after d. Implementations must invoke fn on the
// same logical thread that calls the controller.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}
