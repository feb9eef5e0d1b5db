package tasklist

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/todo/internal/model"
)

// DefaultCompletionDelay is how long a completed task stays in the active
// list, checked, before it moves to the completed list
const DefaultCompletionDelay = 2 * time.Second

var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrUnknownList      = errors.New("unknown list")
)

// ListKind selects one of the two task lists
type ListKind int

const (
	ListActive ListKind = iota
	ListCompleted
)

// String returns the list name used in logs
func (k ListKind) String() string {
	switch k {
	case ListActive:
		return "active"
	case ListCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the controller state in display order
type Snapshot struct {
	Active    []model.Task
	Completed []model.Task
	Input     string
}

// Service is the task list controller
type Service struct {
	active     []model.Task
	completed  []model.Task
	input      string
	pending    map[string]struct{} // ids waiting for the deferred move
	tasksMutex sync.Mutex

	delay     time.Duration
	scheduler Scheduler
	logger    *zap.Logger
	onUpdate  func(Snapshot) // callback for UI updates
}

// NewService creates a new controller. A nil logger disables logging.
func NewService(scheduler Scheduler, delay time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay < 0 {
		delay = 0
	}
	return &Service{
		active:    make([]model.Task, 0),
		completed: make([]model.Task, 0),
		pending:   make(map[string]struct{}),
		delay:     delay,
		scheduler: scheduler,
		logger:    logger,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// SetInput replaces the pending-title buffer
func (s *Service) SetInput(text string) {
	s.tasksMutex.Lock()
	s.input = text
	s.tasksMutex.Unlock()
}

// Input returns the pending-title buffer
func (s *Service) Input() string {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	return s.input
}

// Add appends a new task built from rawTitle to the active list and clears
// the input buffer. Blank titles only clear the buffer and report false.
func (s *Service) Add(rawTitle string) (model.Task, bool) {
	title := model.NormalizeTitle(rawTitle)

	s.tasksMutex.Lock()
	s.input = ""
	if title == "" {
		s.tasksMutex.Unlock()
		s.logger.Debug("ignoring blank task title")
		s.notifyUpdate()
		return model.Task{}, false
	}

	task := model.NewTask(title)
	s.active = append(s.active, task)
	s.tasksMutex.Unlock()

	s.logger.Info("task added", zap.String("task_id", task.ID), zap.String("title", task.Title))
	s.notifyUpdate()
	return task, true
}

// Submit adds a task from the current input buffer
func (s *Service) Submit() (model.Task, bool) {
	return s.Add(s.Input())
}

// Complete marks the active task with the given id as done and schedules
// its move to the completed list. Unknown ids and repeated requests for a
// task that is already waiting to move are ignored.
func (s *Service) Complete(id string) {
	s.tasksMutex.Lock()
	idx := indexOf(s.active, id)
	if idx < 0 {
		s.tasksMutex.Unlock()
		s.logger.Debug("complete ignored, task not active", zap.String("task_id", id))
		return
	}
	if _, waiting := s.pending[id]; waiting || s.active[idx].Completed {
		s.tasksMutex.Unlock()
		s.logger.Debug("complete ignored, move already scheduled", zap.String("task_id", id))
		return
	}

	s.active[idx].Completed = true
	s.pending[id] = struct{}{}
	s.tasksMutex.Unlock()

	s.logger.Info("task completed", zap.String("task_id", id), zap.Duration("move_after", s.delay))
	s.notifyUpdate()

	// The index is resolved again when the timer fires; the list may have
	// changed in between.
	s.scheduler.AfterFunc(s.delay, func() {
		s.finishCompletion(id)
	})
}

// finishCompletion moves a checked task from the active to the completed list
func (s *Service) finishCompletion(id string) {
	s.tasksMutex.Lock()
	delete(s.pending, id)
	idx := indexOf(s.active, id)
	if idx < 0 {
		s.tasksMutex.Unlock()
		s.logger.Debug("deferred move skipped, task no longer active", zap.String("task_id", id))
		return
	}

	task := s.active[idx]
	task.Completed = true
	s.active = append(s.active[:idx], s.active[idx+1:]...)
	s.completed = append(s.completed, task)
	s.tasksMutex.Unlock()

	s.logger.Info("task moved to completed list", zap.String("task_id", id))
	s.notifyUpdate()
}

// Delete removes the rows at offsets from the given list in one batch.
// Offsets refer to the list as it is now and may arrive in any order or
// repeated. If any offset is out of range, nothing is removed.
func (s *Service) Delete(list ListKind, offsets model.Offsets) error {
	offsets = model.NewOffsets(offsets...)
	if offsets.Len() == 0 {
		return nil
	}

	s.tasksMutex.Lock()
	var target *[]model.Task
	switch list {
	case ListActive:
		target = &s.active
	case ListCompleted:
		target = &s.completed
	default:
		s.tasksMutex.Unlock()
		return fmt.Errorf("delete from list %d: %w", int(list), ErrUnknownList)
	}

	n := len(*target)
	if offsets.Min() < 0 || offsets.Max() >= n {
		s.tasksMutex.Unlock()
		return fmt.Errorf("delete from %s list: offsets %v with %d rows: %w", list, []int(offsets), n, ErrOffsetOutOfRange)
	}

	kept := make([]model.Task, 0, n-offsets.Len())
	for i, task := range *target {
		if offsets.Contains(i) {
			continue
		}
		kept = append(kept, task)
	}
	*target = kept
	s.tasksMutex.Unlock()

	s.logger.Info("tasks deleted", zap.Stringer("list", list), zap.Ints("offsets", offsets))
	s.notifyUpdate()
	return nil
}

// Active returns a copy of the active list
func (s *Service) Active() []model.Task {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	return cloneTasks(s.active)
}

// Completed returns a copy of the completed list
func (s *Service) Completed() []model.Task {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	return cloneTasks(s.completed)
}

// Snapshot returns a copy of both lists and the input buffer
func (s *Service) Snapshot() Snapshot {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	return s.snapshotLocked()
}

// Pending returns the number of scheduled moves that have not fired
func (s *Service) Pending() int {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	return len(s.pending)
}

func (s *Service) snapshotLocked() Snapshot {
	return Snapshot{
		Active:    cloneTasks(s.active),
		Completed: cloneTasks(s.completed),
		Input:     s.input,
	}
}

// notifyUpdate calls the update callback if set. Must be called without
// holding tasksMutex.
func (s *Service) notifyUpdate() {
	s.tasksMutex.Lock()
	callback := s.onUpdate
	snap := s.snapshotLocked()
	s.tasksMutex.Unlock()

	if callback != nil {
		callback(snap)
	}
}

func indexOf(tasks []model.Task, id string) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}
