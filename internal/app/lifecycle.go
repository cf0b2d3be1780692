package app

import (
	"sync"

	"inventory-manager/internal/debug"
	"inventory-manager/internal/logger"
	"inventory-manager/internal/services"
)

// Timing operation names recorded by the saver and loader
var timedOperations = []string{"export_tsv", "export_json", "export_html", "import_tsv", "import_json", "import_html"}

type Lifecycle struct {
	service    *services.InventoryService
	debugCoord *debug.Coordinator
	logger     logger.Logger
	once       sync.Once
	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(svc *services.InventoryService, dc *debug.Coordinator) *Lifecycle {
	return &Lifecycle{
		service:    svc,
		debugCoord: dc,
		logger:     dc.Logger(),
	}
}

// Shutdown logs the session summary and stops the debug coordinator. Only the
// first call does anything.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		stats := l.service.GetStats()
		l.logger.Info("Lifecycle", "session summary", map[string]interface{}{
			"items":          stats.ItemCount,
			"exports":        stats.ExportCount,
			"failed_exports": stats.FailedExports,
			"imports":        stats.ImportCount,
			"last_export":    stats.LastExportPath,
		})

		tt := l.debugCoord.TimingTracker()
		for _, op := range timedOperations {
			if avg := tt.GetAverageTime(op); avg > 0 {
				l.logger.Debug("Lifecycle", "average operation time", map[string]interface{}{
					"operation": op,
					"avg_ms":    avg.Milliseconds(),
				})
			}
		}

		// Debug coordinator shutdown last to capture all cleanup events
		l.debugCoord.Shutdown()

		l.mu.Lock()
		l.isShutdown = true
		l.mu.Unlock()

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
