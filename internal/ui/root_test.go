package ui

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/todo/internal/config"
	"github.com/ytget/todo/internal/tasklist"
)

// manualScheduler holds timers until the test fires them
type manualScheduler struct {
	mu     sync.Mutex
	queue  []func()
	delays []time.Duration
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, fn)
	m.delays = append(m.delays, d)
}

func (m *manualScheduler) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// FireNext runs the oldest waiting timer
func (m *manualScheduler) FireNext() {
	m.mu.Lock()
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return
	}
	fn := m.queue[0]
	m.queue = m.queue[1:]
	m.mu.Unlock()
	fn()
}

func (m *manualScheduler) FireAll() {
	m.mu.Lock()
	queue := m.queue
	m.queue = nil
	m.mu.Unlock()
	for _, fn := range queue {
		fn()
	}
}

func newTestRoot(t *testing.T) (*RootUI, *tasklist.Service, *manualScheduler) {
	t.Helper()

	a := test.NewApp()
	w := a.NewWindow("")
	t.Cleanup(w.Close)

	settings := config.NewSettings(a)
	settings.SetLanguage("en")

	sched := &manualScheduler{}
	svc := tasklist.NewService(sched, tasklist.DefaultCompletionDelay, zap.NewNop())
	return NewRootUI(w, a, svc, settings, &manualScheduler{}, zap.NewNop()), svc, sched
}

// uiTimers returns the scheduler that drives status auto-hide
func uiTimers(t *testing.T, ui *RootUI) *manualScheduler {
	t.Helper()
	timers, ok := ui.scheduler.(*manualScheduler)
	require.True(t, ok)
	return timers
}

func rowTitles(section *TaskSection) []string {
	var out []string
	for _, row := range section.Rows() {
		out = append(out, row.titleLabel.Text)
	}
	return out
}

func addViaUI(ui *RootUI, text string) {
	ui.titleEntry.SetText(text)
	test.Tap(ui.addBtn)
}

func swipeLeft(row *TaskRow) {
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-SwipeDeleteDistance-20, 0)})
	row.DragEnd()
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	assert.Equal(t, "ToDo", ui.window.Title())
	assert.Equal(t, FooterText, ui.footerLabel.Text)
	assert.Empty(t, ui.activeSection.Rows())
	assert.Empty(t, ui.completedSection.Rows())
	assert.False(t, ui.statusLabel.Visible())
}

func TestRootUI_AddTask(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	addViaUI(ui, "  Buy milk \n")

	assert.Equal(t, []string{"Buy milk"}, rowTitles(ui.activeSection))
	assert.Equal(t, "", ui.titleEntry.Text)
	assert.Equal(t, "", svc.Input())
}

func TestRootUI_AddBlankClearsEntry(t *testing.T) {
	ui, svc, _ := newTestRoot(t)

	addViaUI(ui, "   ")

	assert.Empty(t, ui.activeSection.Rows())
	assert.Empty(t, svc.Active())
	assert.Equal(t, "", ui.titleEntry.Text)
}

func TestRootUI_AddWithEnter(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.titleEntry.SetText("Read book")
	ui.titleEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	assert.Equal(t, []string{"Read book"}, rowTitles(ui.activeSection))
}

func TestRootUI_CompleteMovesAfterDelay(t *testing.T) {
	ui, _, sched := newTestRoot(t)
	addViaUI(ui, "Buy milk")

	test.Tap(ui.activeSection.Rows()[0])

	// Checked but still in the tasks section
	require.Len(t, ui.activeSection.Rows(), 1)
	assert.True(t, ui.activeSection.Rows()[0].Task().Completed)
	assert.Empty(t, ui.completedSection.Rows())
	assert.False(t, ui.statusLabel.Visible())

	sched.FireAll()

	assert.Empty(t, ui.activeSection.Rows())
	assert.Equal(t, []string{"Buy milk"}, rowTitles(ui.completedSection))
	assert.True(t, ui.completedSection.Rows()[0].Task().Completed)
	assert.True(t, ui.statusLabel.Visible())
	assert.Equal(t, "Task completed", ui.statusLabel.Text)

	uiTimers(t, ui).FireAll()
	assert.False(t, ui.statusLabel.Visible())
}

func TestRootUI_TapOnCompletedRowIsIgnored(t *testing.T) {
	ui, svc, sched := newTestRoot(t)
	addViaUI(ui, "a")
	test.Tap(ui.activeSection.Rows()[0])
	sched.FireAll()

	test.Tap(ui.completedSection.Rows()[0])

	assert.Equal(t, 0, svc.Pending())
	assert.Len(t, svc.Completed(), 1)
}

func TestRootUI_SwipeDeletesActiveRow(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	addViaUI(ui, "one")
	addViaUI(ui, "two")
	addViaUI(ui, "three")

	swipeLeft(ui.activeSection.Rows()[0])

	assert.Equal(t, []string{"two", "three"}, rowTitles(ui.activeSection))
}

func TestRootUI_SwipeDeletesCompletedRow(t *testing.T) {
	ui, svc, sched := newTestRoot(t)
	addViaUI(ui, "keep")
	addViaUI(ui, "done")
	test.Tap(ui.activeSection.Rows()[1])
	sched.FireAll()
	require.Equal(t, []string{"done"}, rowTitles(ui.completedSection))

	swipeLeft(ui.completedSection.Rows()[0])

	assert.Empty(t, ui.completedSection.Rows())
	assert.Equal(t, []string{"keep"}, rowTitles(ui.activeSection))
	assert.Empty(t, svc.Completed())
}

func TestRootUI_ShortDragDoesNotDelete(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	addViaUI(ui, "one")
	row := ui.activeSection.Rows()[0]

	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-20, 0)})
	row.DragEnd()

	assert.Equal(t, []string{"one"}, rowTitles(ui.activeSection))
}

func TestRootUI_StaleDeleteShowsStatus(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	addViaUI(ui, "one")

	ui.onDeleteTask(tasklist.ListActive, 3)

	assert.Equal(t, []string{"one"}, rowTitles(ui.activeSection))
	assert.True(t, ui.statusLabel.Visible())
	assert.Equal(t, ui.localization.GetText(KeyDeleteFailed), ui.statusLabel.Text)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.onLanguageChange("ja")

	assert.Equal(t, "タスク", ui.activeSection.header.Text)
	assert.Equal(t, "完了タスク", ui.completedSection.header.Text)
	assert.Equal(t, "新たなタスクを追加", ui.addHeader.Text)
	assert.Equal(t, "ja", ui.settings.GetLanguage())
}

func TestRootUI_AddButtonLabel(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	assert.Equal(t, "Add", ui.addBtn.Text)

	ui.onLanguageChange("ru")
	assert.Equal(t, "Добавить", ui.addBtn.Text)
}

func TestRootUI_StatusAutoHide(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	timers := uiTimers(t, ui)

	ui.showStatus("first")
	require.Equal(t, 1, timers.Len())
	assert.Equal(t, StatusAutoHide, timers.delays[0])
	assert.True(t, ui.statusLabel.Visible())

	timers.FireAll()
	assert.False(t, ui.statusLabel.Visible())
}

func TestRootUI_StatusAutoHideKeepsNewerMessage(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	timers := uiTimers(t, ui)

	ui.showStatus("first")
	ui.showStatus("second")
	require.Equal(t, 2, timers.Len())

	// The first timer belongs to a replaced message
	timers.FireNext()
	assert.True(t, ui.statusLabel.Visible())
	assert.Equal(t, "second", ui.statusLabel.Text)

	timers.FireNext()
	assert.False(t, ui.statusLabel.Visible())
}

func TestRootUI_VerticalDragOnRowScrollsList(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	for i := 0; i < 30; i++ {
		addViaUI(ui, fmt.Sprintf("task %d", i))
	}
	ui.window.Resize(fyne.NewSize(WindowWidth, 300))
	require.Zero(t, ui.scroll.Offset.Y)

	row := ui.activeSection.Rows()[0]
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-5, -120)})
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-150, -80)})
	row.DragEnd()

	assert.Equal(t, float32(200), ui.scroll.Offset.Y)
	assert.Len(t, ui.activeSection.Rows(), 30, "vertical drag must not delete")

	// Dragging down past the top stops at zero
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(0, 500)})
	row.DragEnd()
	assert.Zero(t, ui.scroll.Offset.Y)
}

func TestRootUI_HorizontalSwipeDoesNotScroll(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	for i := 0; i < 30; i++ {
		addViaUI(ui, fmt.Sprintf("task %d", i))
	}
	ui.window.Resize(fyne.NewSize(WindowWidth, 300))

	row := ui.activeSection.Rows()[0]
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-60, -10)})
	row.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-60, -40)})
	row.DragEnd()

	assert.Zero(t, ui.scroll.Offset.Y)
	assert.Len(t, ui.activeSection.Rows(), 29)
	assert.Equal(t, "task 1", ui.activeSection.Rows()[0].titleLabel.Text)
}

func TestRootUI_ApplySettings(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.settings.SetLanguage("ja")
	ui.settings.SetThemeVariant(config.ThemeDark)
	ui.applySettings()

	assert.Equal(t, "タスク", ui.activeSection.header.Text)
	assert.Equal(t, "完了タスク", ui.completedSection.header.Text)
	assert.Equal(t, "追加", ui.addBtn.Text)
	assert.Equal(t, "設定を保存しました", ui.statusLabel.Text)

	applied, ok := ui.app.Settings().Theme().(*CompactTheme)
	require.True(t, ok)
	assert.Equal(t, config.ThemeDark, applied.variant)
}
