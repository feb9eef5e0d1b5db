package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/todo/internal/model"
	"github.com/ytget/todo/internal/tasklist"
)

func TestTaskRow_TapCallsComplete(t *testing.T) {
	test.NewApp()
	task := model.NewTask("Buy milk")
	row := NewTaskRow(task, tasklist.ListActive, 0, NewLocalization())

	var completed string
	row.SetCallbacks(func(id string) { completed = id }, nil)
	test.Tap(row)

	assert.Equal(t, task.ID, completed)
}

func TestTaskRow_TapOnCompletedListDoesNothing(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.NewTask("x"), tasklist.ListCompleted, 0, NewLocalization())

	called := false
	row.SetCallbacks(func(string) { called = true }, nil)
	test.Tap(row)

	assert.False(t, called)
}

func TestTaskRow_SwipeReportsListAndIndex(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.NewTask("x"), tasklist.ListCompleted, 4, NewLocalization())

	var gotList tasklist.ListKind
	gotIndex := -1
	row.SetCallbacks(nil, func(list tasklist.ListKind, index int) {
		gotList, gotIndex = list, index
	})

	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-100, 5)})
	row.DragEnd()

	assert.Equal(t, tasklist.ListCompleted, gotList)
	assert.Equal(t, 4, gotIndex)
}

func TestTaskRow_SwipeRightDoesNotDelete(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.NewTask("x"), tasklist.ListActive, 0, NewLocalization())

	called := false
	row.SetCallbacks(nil, func(tasklist.ListKind, int) { called = true })
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(150, 0)})
	row.DragEnd()

	assert.False(t, called)
}

func TestTaskRow_UpdateTask(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.NewTask("old"), tasklist.ListActive, 0, NewLocalization())

	next := model.NewTask("new\nline")
	next.Completed = true
	row.UpdateTask(next, 2)

	assert.Equal(t, "new line", row.titleLabel.Text)
	assert.Equal(t, 2, row.index)
	assert.Equal(t, next.ID, row.Task().ID)
}

func TestTaskRow_MinHeight(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.NewTask("x"), tasklist.ListActive, 0, NewLocalization())

	assert.GreaterOrEqual(t, row.MinSize().Height, RowMinHeight)
}

func TestTaskRow_TapOnCheckedActiveRowDoesNothing(t *testing.T) {
	test.NewApp()
	task := model.NewTask("x")
	task.Completed = true
	row := NewTaskRow(task, tasklist.ListActive, 0, NewLocalization())

	called := false
	row.SetCallbacks(func(string) { called = true }, nil)
	test.Tap(row)

	assert.False(t, called, "checked row waits for its move")
}

func TestTaskRow_IconFollowsState(t *testing.T) {
	test.NewApp()
	task := model.NewTask("x")
	row := NewTaskRow(task, tasklist.ListActive, 0, NewLocalization())
	assert.Equal(t, theme.RadioButtonIcon().Name(), row.icon.Resource.Name())

	task.Completed = true
	row.UpdateTask(task, 0)
	assert.NotEqual(t, theme.RadioButtonIcon().Name(), row.icon.Resource.Name())
}

func TestTaskRow_VerticalDragGoesToScroller(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.NewTask("x"), tasklist.ListActive, 0, NewLocalization())
	tall := container.NewVBox(row)
	for i := 0; i < 40; i++ {
		tall.Add(NewTaskRow(model.NewTask("filler"), tasklist.ListActive, i+1, NewLocalization()))
	}
	scroll := container.NewVScroll(tall)
	scroll.Resize(fyne.NewSize(300, 200))
	row.SetScroller(scroll)

	called := false
	row.SetCallbacks(nil, func(tasklist.ListKind, int) { called = true })

	// Starts vertical, so later sideways movement still scrolls
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(0, -50)})
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-200, 0)})
	row.DragEnd()

	assert.False(t, called)
	assert.Equal(t, float32(50), scroll.Offset.Y)
}
