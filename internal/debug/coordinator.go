package debug

import (
	"inventory-manager/internal/debug/eventbus"
	"inventory-manager/internal/debug/filetracker"
	"inventory-manager/internal/debug/timing"
	"inventory-manager/internal/logger"
)

type Config struct {
	EnableFileTracking   bool
	EnableTimingTracking bool
	EventBufferSize      int
}

func DefaultConfig() Config {
	return Config{
		EnableFileTracking:   true,
		EnableTimingTracking: true,
		EventBufferSize:      256,
	}
}

// Coordinator owns the diagnostic trackers and the event bus shared by the
// services, so they can be configured and shut down together.
type Coordinator struct {
	logger        logger.Logger
	fileTracker   *filetracker.Tracker
	timingTracker *timing.Tracker
	eventBus      *eventbus.Bus
}

func NewCoordinator(config Config, log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	fileTracker := filetracker.NewTracker(log)
	fileTracker.SetEnabled(config.EnableFileTracking)

	timingTracker := timing.NewTracker(log)
	timingTracker.SetEnabled(config.EnableTimingTracking)

	return &Coordinator{
		logger:        log,
		fileTracker:   fileTracker,
		timingTracker: timingTracker,
		eventBus:      eventbus.NewBus(config.EventBufferSize, log),
	}
}

func (dc *Coordinator) Logger() logger.Logger {
	return dc.logger
}

func (dc *Coordinator) FileTracker() *filetracker.Tracker {
	return dc.fileTracker
}

func (dc *Coordinator) TimingTracker() *timing.Tracker {
	return dc.timingTracker
}

func (dc *Coordinator) EventBus() *eventbus.Bus {
	return dc.eventBus
}

// Shutdown flushes pending events and reports file handles that were never closed
func (dc *Coordinator) Shutdown() {
	dc.eventBus.Shutdown()

	leaks := dc.fileTracker.DetectLeaks(0)
	for _, leak := range leaks {
		dc.logger.Warning("DebugCoordinator", "file handle still open", map[string]interface{}{
			"path": leak.Path,
			"mode": leak.Mode,
		})
	}

	opened, closed := dc.fileTracker.Counts()
	dc.logger.Debug("DebugCoordinator", "shutdown complete", map[string]interface{}{
		"files_opened":   opened,
		"files_closed":   closed,
		"leaked":         len(leaks),
		"events_dropped": dc.eventBus.Dropped(),
	})
}
