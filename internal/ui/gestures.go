package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name used in logs
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "none"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture turns a pointer movement into a gesture. Movements shorter
// than threshold are taps or long presses depending on duration; longer ones
// are swipes along their dominant axis.
func ClassifyGesture(dx, dy float32, duration time.Duration, threshold float32, longPress time.Duration) GestureType {
	distance := float32(math.Hypot(float64(dx), float64(dy)))
	if distance < threshold {
		if duration >= longPress {
			return GestureLongPress
		}
		return GestureTap
	}

	absDx := float32(math.Abs(float64(dx)))
	absDy := float32(math.Abs(float64(dy)))
	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// GestureHandler accumulates drag events for one widget and reports the
// gesture when the drag ends
type GestureHandler struct {
	onGesture func(GestureType)

	// Drag tracking
	dragging  bool
	startTime time.Time
	offset    fyne.Delta
	now       func() time.Time

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(swipeThreshold float32, onGesture func(GestureType)) *GestureHandler {
	if swipeThreshold <= 0 {
		swipeThreshold = DefaultSwipeThreshold
	}
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    swipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Dragged records a drag step
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	if !gh.dragging {
		gh.dragging = true
		gh.startTime = gh.now()
		gh.offset = fyne.Delta{}
	}
	gh.offset.DX += event.Dragged.DX
	gh.offset.DY += event.Dragged.DY
}

// DragEnd classifies the finished drag and triggers the callback
func (gh *GestureHandler) DragEnd() {
	if !gh.dragging {
		return
	}
	gesture := ClassifyGesture(gh.offset.DX, gh.offset.DY, gh.now().Sub(gh.startTime), gh.swipeThreshold, gh.longPressDuration)
	gh.Cancel()
	gh.triggerGesture(gesture)
}

// Offset returns the horizontal distance dragged so far
func (gh *GestureHandler) Offset() float32 {
	return gh.offset.DX
}

// Cancel resets tracking without reporting a gesture
func (gh *GestureHandler) Cancel() {
	gh.dragging = false
	gh.offset = fyne.Delta{}
	gh.startTime = time.Time{}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
