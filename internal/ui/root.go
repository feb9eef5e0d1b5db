package ui

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/todo/internal/config"
	"github.com/ytget/todo/internal/model"
	"github.com/ytget/todo/internal/tasklist"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	manager      tasklist.Manager
	settings     *config.Settings
	localization *Localization
	scheduler    tasklist.Scheduler
	logger       *zap.Logger

	// Header and add field
	navTitle    *widget.Label
	addHeader   *widget.Label
	titleEntry  *widget.Entry
	addBtn      *widget.Button
	settingsBtn *widget.Button

	// Lists
	activeSection    *TaskSection
	completedSection *TaskSection
	scroll           *container.Scroll

	// Status line and footer
	statusLabel *widget.Label
	statusSeq   int
	footerLabel *widget.Label

	completedCount int
}

// NewRootUI creates and initializes the main UI. The scheduler runs UI
// timers such as hiding the status line; nil uses fyne.Do dispatch.
func NewRootUI(window fyne.Window, app fyne.App, manager tasklist.Manager, settings *config.Settings, scheduler tasklist.Scheduler, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scheduler == nil {
		scheduler = tasklist.NewDispatchScheduler(fyne.Do)
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		manager:      manager,
		settings:     settings,
		localization: localization,
		scheduler:    scheduler,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Re-render on every controller change
	ui.manager.SetUpdateCallback(ui.onSnapshot)
	initial := ui.manager.Snapshot()
	ui.completedCount = len(initial.Completed)
	ui.render(initial)

	logger.Debug("root UI initialized", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Navigation title
	ui.navTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.navTitle.SizeName = theme.SizeNameHeadingText

	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.navTitle)

	// Add section: entry with trailing add button
	ui.addHeader = widget.NewLabelWithStyle(ui.localization.GetText(KeyAddSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.addHeader.Importance = widget.LowImportance

	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(ui.localization.GetText(KeyAddPlaceholder))
	ui.titleEntry.OnChanged = ui.manager.SetInput
	// Add the task when user presses Enter in the title field
	ui.titleEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyAdd), theme.ContentAddIcon(), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	addRow := container.NewBorder(nil, nil, nil, ui.addBtn, ui.titleEntry)
	addSection := container.NewVBox(ui.addHeader, widget.NewSeparator(), addRow)

	// Task sections
	ui.activeSection = NewTaskSection(tasklist.ListActive, KeyTasksSection, ui.localization)
	ui.activeSection.SetCallbacks(ui.onCompleteTask, ui.onDeleteTask)

	ui.completedSection = NewTaskSection(tasklist.ListCompleted, KeyCompletedSection, ui.localization)
	ui.completedSection.SetCallbacks(ui.onCompleteTask, ui.onDeleteTask)

	body := container.NewVBox(
		addSection,
		layoutGap(),
		ui.activeSection.Container(),
		layoutGap(),
		ui.completedSection.Container(),
	)

	// Status line (hidden by default) and static footer
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Importance = widget.WarningImportance
	ui.statusLabel.Hide()

	ui.footerLabel = widget.NewLabelWithStyle(FooterText, fyne.TextAlignCenter, fyne.TextStyle{})
	ui.footerLabel.SizeName = theme.SizeNameCaptionText

	bottom := container.NewVBox(ui.statusLabel, ui.footerLabel)

	// Rows hand vertical drags back to the scroll so the list stays scrollable by touch
	ui.scroll = container.NewVScroll(container.NewPadded(body))
	ui.activeSection.SetScroller(ui.scroll)
	ui.completedSection.SetScroller(ui.scroll)

	content := container.NewBorder(topPanel, bottom, nil, nil, ui.scroll)

	ui.window.SetContent(content)
}

// layoutGap returns fixed vertical spacing between sections
func layoutGap() fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, SectionGap))
	return gap
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for _, option := range ui.settings.GetLanguageOptions() {
		langCode := option.Code
		langItem := fyne.NewMenuItem(option.Name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark the stored choice, which may be "system"
		if ui.settings.GetLanguage() == langCode {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.navTitle.SetText(ui.localization.GetText(KeyAppTitle))
	ui.addHeader.SetText(ui.localization.GetText(KeyAddSection))
	ui.titleEntry.SetPlaceHolder(ui.localization.GetText(KeyAddPlaceholder))
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.activeSection.RefreshTexts()
	ui.completedSection.RefreshTexts()
}

// onAddClick handles the add button and Enter in the title field
func (ui *RootUI) onAddClick() {
	ui.manager.SetInput(ui.titleEntry.Text)
	if task, ok := ui.manager.Submit(); ok {
		ui.logger.Debug("task submitted from UI", zap.String("task_id", task.ID))
	}
}

// onCompleteTask handles a tap on an active row
func (ui *RootUI) onCompleteTask(taskID string) {
	ui.manager.Complete(taskID)
}

// onDeleteTask handles swipe-to-delete and the row context menu
func (ui *RootUI) onDeleteTask(list tasklist.ListKind, index int) {
	err := ui.manager.Delete(list, model.NewOffsets(index))
	if err == nil {
		return
	}

	ui.logger.Warn("delete rejected", zap.Stringer("list", list), zap.Int("offset", index), zap.Error(err))
	if errors.Is(err, tasklist.ErrOffsetOutOfRange) {
		// Row was stale; redraw from the current state.
		ui.render(ui.manager.Snapshot())
	}
	ui.showStatus(ui.localization.GetText(KeyDeleteFailed))
}

// onSnapshot is the controller update callback. The controller calls it on
// the UI thread: directly for user actions, via fyne.Do for timer moves.
func (ui *RootUI) onSnapshot(snap tasklist.Snapshot) {
	ui.render(snap)

	// Only the deferred move grows the completed list
	if len(snap.Completed) > ui.completedCount {
		ui.showStatus(ui.localization.GetText(KeyTaskCompleted))
	}
	ui.completedCount = len(snap.Completed)
}

// render draws both sections and syncs the entry with the input buffer
func (ui *RootUI) render(snap tasklist.Snapshot) {
	ui.activeSection.SetTasks(snap.Active)
	ui.completedSection.SetTasks(snap.Completed)

	if ui.titleEntry.Text != snap.Input {
		ui.titleEntry.SetText(snap.Input)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings reloads language and theme after the dialog saved them
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewCompactTheme(ui.settings.GetThemeVariant()))
	ui.refreshUITexts()
	ui.createMenu()
	ui.showStatus(ui.localization.GetText(KeySettingsSaved))
}

// showStatus displays a message above the footer and hides it after a while
func (ui *RootUI) showStatus(message string) {
	ui.statusSeq++
	seq := ui.statusSeq

	ui.statusLabel.SetText(message)
	ui.statusLabel.Show()

	ui.scheduler.AfterFunc(StatusAutoHide, func() {
		if ui.statusSeq == seq {
			ui.statusLabel.Hide()
		}
	})
}
