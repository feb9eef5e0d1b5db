package tasklist

import "time"

// DispatchScheduler fires timers with time.AfterFunc and hands the callback
// to dispatch, which marshals it onto the UI thread (fyne.Do in the app).
// Scheduled callbacks cannot be cancelled.
type DispatchScheduler struct {
	dispatch func(func())
}

// NewDispatchScheduler creates a scheduler. A nil dispatch runs callbacks
// directly on the timer goroutine.
func NewDispatchScheduler(dispatch func(func())) *DispatchScheduler {
	return &DispatchScheduler{dispatch: dispatch}
}

// AfterFunc schedules fn to run once after d
func (s *DispatchScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		if s.dispatch != nil {
			s.dispatch(fn)
			return
		}
		fn()
	})
}
