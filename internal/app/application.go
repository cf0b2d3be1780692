package app

import (
	"fmt"
	"os"
	"sync/atomic"

	"inventory-manager/internal/config"
	"inventory-manager/internal/controllers"
	"inventory-manager/internal/debug"
	"inventory-manager/internal/debug/eventbus"
	"inventory-manager/internal/logger"
	"inventory-manager/internal/models"
	"inventory-manager/internal/pipeline"
	"inventory-manager/internal/router"
	"inventory-manager/internal/services"
	"inventory-manager/internal/viewmodels"
	"inventory-manager/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Inventory Manager"
	AppID      = "com.inventory.manager"
	AppVersion = "1.0.0"
)

// Application owns the Fyne app, the main window and every component behind it
type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	config    config.Config
	logger    logger.Logger
	router    *router.Router[fyne.CanvasObject]
	service   *services.InventoryService
	mainVM    *viewmodels.MainViewModel
	lifecycle *Lifecycle
	running   atomic.Bool
}

// NewApplication creates the Fyne app and assembles the application around it
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return NewWithFyneApp(fyneApp, cfg, log)
}

// NewWithFyneApp assembles the application on an existing Fyne app.
func NewWithFyneApp(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	format, err := pipeline.ParseFormat(cfg.Export.Format)
	if err != nil {
		return nil, fmt.Errorf("export format: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"log_level":     cfg.LogLevel,
	})

	debugCoord := debug.NewCoordinator(debug.Config{
		EnableFileTracking:   cfg.Debug.FileTracking,
		EnableTimingTracking: cfg.Debug.Timing,
		EventBufferSize:      cfg.Debug.EventBuffer,
	}, log)

	service := services.NewInventoryService(
		models.NewInventory(),
		pipeline.NewSaver(log, debugCoord.FileTracker(), debugCoord.TimingTracker()),
		pipeline.NewLoader(log, debugCoord.FileTracker(), debugCoord.TimingTracker()),
		log,
	)
	service.SetPublisher(debugCoord.EventBus())

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		config:    cfg,
		logger:    log,
		router:    router.New[fyne.CanvasObject](log),
		service:   service,
		mainVM:    viewmodels.NewMainViewModel(service),
		lifecycle: NewLifecycle(service, debugCoord),
	}
	a.registerScreens(format)
	a.subscribeStatus(debugCoord.EventBus())

	a.router.OnNavigate(func(screen router.Screen, content fyne.CanvasObject) {
		fyne.Do(func() {
			a.window.SetContent(content)
		})
	})

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func (a *Application) registerScreens(defaultFormat pipeline.Format) {
	exportDir := a.config.Export.Directory
	if exportDir == "" {
		if wd, err := os.Getwd(); err == nil {
			exportDir = wd
		}
	}

	a.router.Register(router.ScreenMain, func(router.Params) (fyne.CanvasObject, error) {
		view := views.NewMainView(a.window, a.mainVM, a.mainVM.Query, a.mainVM.Status)
		controllers.NewMainController(a.mainVM, a.router, a.logger).SetMainView(view)
		return view.GetContainer(), nil
	})

	a.router.Register(router.ScreenItem, func(params router.Params) (fyne.CanvasObject, error) {
		vm, err := viewmodels.NewItemViewModel(a.service, params.Int("index", models.NotFound))
		if err != nil {
			return nil, err
		}
		view := views.NewItemView(vm.Title(), views.ItemFields{
			Serial: vm.Serial,
			Name:   vm.Name,
			Cost:   vm.Cost,
		})
		controllers.NewItemController(vm, view, a.router, a.logger)
		return view.GetContainer(), nil
	})

	a.router.Register(router.ScreenSave, func(router.Params) (fyne.CanvasObject, error) {
		vm := viewmodels.NewSaveViewModel(a.service, exportDir, defaultFormat)
		view := views.NewSaveView(a.window, vm.Directory, vm.Filename, vm.ErrorVisible,
			pipeline.Formats(), vm.Format().String())
		controllers.NewSaveController(vm, view, a.router, a.logger)
		return view.GetContainer(), nil
	})

	a.router.Register(router.ScreenLoad, func(router.Params) (fyne.CanvasObject, error) {
		vm := viewmodels.NewLoadViewModel(a.service)
		view := views.NewLoadView(a.window, vm.Path, vm.ErrorVisible, pipeline.ImportExtensions())
		controllers.NewLoadController(vm, view, a.router, a.logger)
		return view.GetContainer(), nil
	})
}

// subscribeStatus reports completed file operations on the main screen status bar
func (a *Application) subscribeStatus(bus *eventbus.Bus) {
	bus.Subscribe(services.EventInventoryExported, eventbus.HandlerFunc("status", func(e eventbus.Event) {
		_ = a.mainVM.Status.Set(fmt.Sprintf("Saved %v items to %v", e.Data["items"], e.Data["path"]))
	}))
	bus.Subscribe(services.EventInventoryImported, eventbus.HandlerFunc("status", func(e eventbus.Event) {
		_ = a.mainVM.Status.Set(fmt.Sprintf("Loaded %v items from %v", e.Data["items"], e.Data["path"]))
	}))
	bus.Subscribe(services.EventInventoryCleared, eventbus.HandlerFunc("status", func(e eventbus.Event) {
		_ = a.mainVM.Status.Set(fmt.Sprintf("Removed %v items", e.Data["removed"]))
	}))
}

// Start shows the main screen without entering the event loop
func (a *Application) Start() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.setupMenus()

	if err := a.router.Reset(router.ScreenMain, nil); err != nil {
		return fmt.Errorf("show main screen: %w", err)
	}
	return nil
}

// Run shows the window and blocks until the Fyne app exits
func (a *Application) Run() error {
	if err := a.Start(); err != nil {
		return err
	}

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.running.Store(true)
	a.fyneApp.Run()
	a.running.Store(false)

	a.lifecycle.Shutdown()
	return nil
}

// Shutdown releases resources and quits the Fyne event loop if it is still running
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
	if a.running.Load() {
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	}
}

func (a *Application) Service() *services.InventoryService {
	return a.service
}

func (a *Application) Router() *router.Router[fyne.CanvasObject] {
	return a.router
}

func (a *Application) Window() fyne.Window {
	return a.window
}
