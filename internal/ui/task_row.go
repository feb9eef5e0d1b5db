package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/todo/internal/model"
	"github.com/ytget/todo/internal/tasklist"
)

// dragAxis is decided on the first drag event and kept until the drag ends
type dragAxis int

const (
	dragAxisNone dragAxis = iota
	dragAxisHorizontal
	dragAxisVertical
)

// TaskRow renders one task: a status icon and the title. Tapping an active
// row completes it; swiping left or using the context menu deletes it.
type TaskRow struct {
	widget.BaseWidget

	task         model.Task
	list         tasklist.ListKind
	index        int
	localization *Localization

	// UI components
	icon       *widget.Icon
	titleLabel *widget.Label
	swipeBg    *canvas.Rectangle

	gestures *GestureHandler
	scroller *container.Scroll
	dragAxis dragAxis

	// Callbacks
	onComplete func(taskID string)
	onDelete   func(list tasklist.ListKind, index int)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task model.Task, list tasklist.ListKind, index int, localization *Localization) *TaskRow {
	tr := &TaskRow{
		task:         task,
		list:         list,
		index:        index,
		localization: localization,
	}
	tr.gestures = NewGestureHandler(SwipeDeleteDistance, tr.onGesture)
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(onComplete func(taskID string), onDelete func(list tasklist.ListKind, index int)) {
	tr.onComplete = onComplete
	tr.onDelete = onDelete
}

// SetScroller sets the scroll container that takes over vertical drags
func (tr *TaskRow) SetScroller(scroller *container.Scroll) {
	tr.scroller = scroller
}

// UpdateTask points the row at new task data and position
func (tr *TaskRow) UpdateTask(task model.Task, index int) {
	tr.task = task
	tr.index = index
	tr.updateFromTask()
	tr.Refresh()
}

// Task returns the task currently shown
func (tr *TaskRow) Task() model.Task {
	return tr.task
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.icon = widget.NewIcon(theme.RadioButtonIcon())

	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.Alignment = fyne.TextAlignLeading
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.swipeBg = canvas.NewRectangle(color.Transparent)
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	tr.titleLabel.SetText(tr.task.GetDisplayTitle())

	if tr.task.State().IsFinished() {
		tr.icon.SetResource(theme.NewSuccessThemedResource(theme.RadioButtonCheckedIcon()))
	} else {
		tr.icon.SetResource(theme.RadioButtonIcon())
	}
}

// Tapped completes the task when it sits in the active list and is not
// already checked
func (tr *TaskRow) Tapped(_ *fyne.PointEvent) {
	if tr.list != tasklist.ListActive || !tr.task.State().IsActive() || tr.onComplete == nil {
		return
	}
	tr.onComplete(tr.task.ID)
}

// TappedSecondary shows a context menu with the delete action
func (tr *TaskRow) TappedSecondary(ev *fyne.PointEvent) {
	c := fyne.CurrentApp().Driver().CanvasForObject(tr)
	if c == nil {
		return
	}
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(tr.localization.GetText(KeyDelete), tr.requestDelete),
	)
	widget.ShowPopUpMenuAtPosition(menu, c, ev.AbsolutePosition)
}

// Dragged tracks a horizontal swipe and highlights the row once it passes
// the delete distance. A drag that starts mostly vertical scrolls the list.
func (tr *TaskRow) Dragged(ev *fyne.DragEvent) {
	if tr.dragAxis == dragAxisNone {
		tr.dragAxis = dragAxisHorizontal
		if tr.scroller != nil && abs32(ev.Dragged.DY) > abs32(ev.Dragged.DX) {
			tr.dragAxis = dragAxisVertical
		}
	}

	if tr.dragAxis == dragAxisVertical {
		scrollBy(tr.scroller, ev.Dragged.DY)
		return
	}

	tr.gestures.Dragged(ev)
	tr.setSwipeHighlight(tr.gestures.Offset() <= -SwipeDeleteDistance)
}

// DragEnd finishes the swipe or the scroll
func (tr *TaskRow) DragEnd() {
	axis := tr.dragAxis
	tr.dragAxis = dragAxisNone
	if axis == dragAxisVertical {
		return
	}

	tr.setSwipeHighlight(false)
	tr.gestures.DragEnd()
}

// scrollBy moves the scroll content with the finger, clamped to the content
func scrollBy(scroller *container.Scroll, dy float32) {
	maxOffset := scroller.Content.MinSize().Height - scroller.Size().Height
	if maxOffset < 0 {
		maxOffset = 0
	}

	y := scroller.Offset.Y - dy
	if y < 0 {
		y = 0
	}
	if y > maxOffset {
		y = maxOffset
	}
	if y == scroller.Offset.Y {
		return
	}

	scroller.Offset.Y = y
	scroller.Refresh()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (tr *TaskRow) onGesture(g GestureType) {
	if g == GestureSwipeLeft {
		tr.requestDelete()
	}
}

func (tr *TaskRow) requestDelete() {
	if tr.onDelete != nil {
		tr.onDelete(tr.list, tr.index)
	}
}

func (tr *TaskRow) setSwipeHighlight(on bool) {
	if on {
		tr.swipeBg.FillColor = theme.Color(theme.ColorNameError)
	} else {
		tr.swipeBg.FillColor = color.Transparent
	}
	tr.swipeBg.Refresh()
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, tr.icon, nil, tr.titleLabel)
	return &taskRowRenderer{
		taskRow: tr,
		layout:  container.NewStack(tr.swipeBg, content),
	}
}

// taskRowRenderer renders the task row widget
type taskRowRenderer struct {
	taskRow *TaskRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *taskRowRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *taskRowRenderer) MinSize() fyne.Size {
	size := r.layout.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// Refresh refreshes the renderer
func (r *taskRowRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *taskRowRenderer) Destroy() {}
