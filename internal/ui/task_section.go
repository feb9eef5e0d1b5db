package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/todo/internal/model"
	"github.com/ytget/todo/internal/tasklist"
)

// TaskSection is a titled group of task rows for one list
type TaskSection struct {
	list         tasklist.ListKind
	localization *Localization
	headerKey    string

	// Tasks data
	tasks []model.Task
	rows  []*TaskRow

	// UI components
	header     *widget.Label
	emptyLabel *widget.Label
	rowsBox    *fyne.Container
	container  *fyne.Container
	scroller   *container.Scroll

	// Callbacks
	onComplete func(taskID string)
	onDelete   func(list tasklist.ListKind, index int)
}

// NewTaskSection creates a new section UI component
func NewTaskSection(list tasklist.ListKind, headerKey string, localization *Localization) *TaskSection {
	ts := &TaskSection{
		list:         list,
		localization: localization,
		headerKey:    headerKey,
		tasks:        make([]model.Task, 0),
	}

	ts.createUI()
	return ts
}

// createUI creates the user interface for the section
func (ts *TaskSection) createUI() {
	ts.header = widget.NewLabelWithStyle(ts.localization.GetText(ts.headerKey), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ts.header.Importance = widget.LowImportance

	ts.emptyLabel = widget.NewLabel(ts.localization.GetText(KeyNoTasks))
	ts.emptyLabel.Importance = widget.LowImportance

	ts.rowsBox = container.NewVBox(ts.emptyLabel)
	ts.container = container.NewVBox(ts.header, widget.NewSeparator(), ts.rowsBox)
}

// Container returns the main container
func (ts *TaskSection) Container() *fyne.Container {
	return ts.container
}

// SetCallbacks sets row callbacks for every current and future row
func (ts *TaskSection) SetCallbacks(onComplete func(taskID string), onDelete func(list tasklist.ListKind, index int)) {
	ts.onComplete = onComplete
	ts.onDelete = onDelete
	for _, row := range ts.rows {
		row.SetCallbacks(onComplete, onDelete)
	}
}

// SetScroller sets the scroll container that receives vertical drags
// started on a row
func (ts *TaskSection) SetScroller(scroller *container.Scroll) {
	ts.scroller = scroller
	for _, row := range ts.rows {
		row.SetScroller(scroller)
	}
}

// SetTasks renders tasks in order. Existing rows are reused by position.
func (ts *TaskSection) SetTasks(tasks []model.Task) {
	ts.tasks = tasks

	for i, task := range tasks {
		if i < len(ts.rows) {
			ts.rows[i].UpdateTask(task, i)
			continue
		}
		row := NewTaskRow(task, ts.list, i, ts.localization)
		row.SetCallbacks(ts.onComplete, ts.onDelete)
		row.SetScroller(ts.scroller)
		ts.rows = append(ts.rows, row)
	}
	ts.rows = ts.rows[:len(tasks)]

	objects := make([]fyne.CanvasObject, 0, len(ts.rows))
	for _, row := range ts.rows {
		objects = append(objects, row)
	}
	if len(objects) == 0 {
		objects = append(objects, ts.emptyLabel)
	}
	ts.rowsBox.Objects = objects
	ts.rowsBox.Refresh()
}

// Rows returns the rows currently rendered
func (ts *TaskSection) Rows() []*TaskRow {
	return ts.rows
}

// RefreshTexts re-reads localized strings
func (ts *TaskSection) RefreshTexts() {
	ts.header.SetText(ts.localization.GetText(ts.headerKey))
	ts.emptyLabel.SetText(ts.localization.GetText(KeyNoTasks))
}
