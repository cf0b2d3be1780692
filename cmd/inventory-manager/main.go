package main

import (
	"log"
	"runtime"

	"inventory-manager/internal/app"
	"inventory-manager/internal/config"
	"inventory-manager/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := cfg.NewLogger()
	appLogger.Info("Main", "configuration loaded", map[string]interface{}{
		"log_level":     cfg.LogLevel,
		"json_logs":     cfg.JSONLogs,
		"export_dir":    cfg.Export.Directory,
		"export_format": cfg.Export.Format,
		"go_version":    runtime.Version(),
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger, shutdown.DefaultTimeout)
	shutdownManager.Register("application", application)
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	shutdownManager.Shutdown()
	log.Println("Application terminated successfully")
}
