package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"

	"simple-calculator/internal/config"
	"simple-calculator/internal/controllers"
	"simple-calculator/internal/logger"
	"simple-calculator/internal/models"
	"simple-calculator/internal/observability"
	"simple-calculator/internal/services"
	"simple-calculator/internal/shutdown"
	"simple-calculator/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.opentelemetry.io/otel"
)

const (
	AppName    = "Simple Calculator"
	AppID      = "com.example.simple-calculator"
	AppVersion = "1.0.0"
)

// Application owns the calculator's object graph for the lifetime of the process
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.CalculatorController
	view       *views.MainView

	service *services.CalculationService
	state   *models.CalculatorState
	metrics *observability.Metrics

	shutdown  *shutdown.Manager
	uiStopped atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := NewApplication(ctx)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication builds and wires every component
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, cfgErr := config.Load(os.Getenv)
	appLogger := logger.New(cfg.LogFormat, cfg.LogLevel)
	if cfgErr != nil {
		appLogger.Warning("Application", "ignoring invalid configuration", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appCtx, appCancel := context.WithCancel(ctx)

	metrics := observability.InitMetrics(appLogger)

	state := models.NewCalculatorState()
	service, err := services.NewCalculationService(appLogger, otel.Meter("simple-calculator"))
	if err != nil {
		appCancel()
		metrics.Shutdown()
		return nil, fmt.Errorf("creating calculation service: %w", err)
	}

	controller := controllers.NewCalculatorController(appCtx, service, state, appLogger)
	view := views.NewMainView(window)
	view.SetCalculateHandler(controller.Calculate)
	view.SetClearHandler(controller.Clear)
	controller.SetView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
		service:    service,
		state:      state,
		metrics:    metrics,
		shutdown:   shutdown.NewManager(AppName, appLogger),
		ctx:        appCtx,
		cancel:     appCancel,
	}

	application.setupMenus()
	application.setupWindowEvents()
	application.setupShutdown()

	appLogger.Info("Application", "application initialized", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
		"log_format": string(cfg.LogFormat),
	})

	return application, nil
}

// Run shows the window and blocks until the fyne event loop exits
func (app *Application) Run() {
	app.logger.Info("Application", "starting UI", nil)

	app.shutdown.Listen()
	app.view.Show()
	app.view.FocusFirstInput()

	go func() {
		<-app.ctx.Done()
		app.logger.Debug("Application", "context cancelled, shutting down", nil)
		app.shutdown.Shutdown()
	}()

	app.fyneApp.Run()
	app.uiStopped.Store(true)
	app.shutdown.Shutdown()
}

func (app *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear", func() {
			app.controller.Clear()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", app.confirmQuit),
	)

	app.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// confirmQuit asks before closing; the shutdown manager then stops every component.
func (app *Application) confirmQuit() {
	app.view.ShowConfirm("Exit Application", "Are you sure you want to exit?", func(confirmed bool) {
		if confirmed {
			app.logger.Info("Application", "quit confirmed", nil)
			app.fyneApp.Quit()
		}
	})
}

func (app *Application) setupWindowEvents() {
	app.window.SetMaster()
	app.window.SetCloseIntercept(app.confirmQuit)
	app.window.SetOnClosed(func() {
		app.uiStopped.Store(true)
		app.logger.Info("Application", "window closed", nil)
	})
}

// setupShutdown registers components in start order; they stop in reverse.
func (app *Application) setupShutdown() {
	app.shutdown.Register("fyne app", shutdown.Func(func() {
		if !app.uiStopped.Load() {
			fyne.Do(app.fyneApp.Quit)
		}
	}))
	app.shutdown.Register("metrics", app.metrics)
	app.shutdown.Register("controller", app.controller)
	app.shutdown.Register("context", shutdown.Func(app.cancel))
}
