package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/todo/internal/config"
	"github.com/ytget/todo/internal/tasklist"
	"github.com/ytget/todo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.todo"

	// DebugEnv switches the logger to development mode when set
	DebugEnv = "TODO_DEBUG"
)

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetThemeVariant()))

	myWindow := myApp.NewWindow("ToDo")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Deferred moves and UI timers are marshaled back onto the UI thread
	scheduler := tasklist.NewDispatchScheduler(fyne.Do)
	taskSvc := tasklist.NewService(scheduler, settings.GetCompletionDelay(), logger.Named("tasklist"))

	ui.NewRootUI(myWindow, myApp, taskSvc, settings, scheduler, logger.Named("ui"))

	myWindow.ShowAndRun()

	// Tasks are not persisted, so pending moves are simply dropped
	logger.Info("exiting", zap.Int("pending_moves", taskSvc.Pending()))
}

func newLogger() *zap.Logger {
	build := zap.NewProduction
	if os.Getenv(DebugEnv) != "" {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
