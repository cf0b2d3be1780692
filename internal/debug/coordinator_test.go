package debug

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory-manager/internal/debug/eventbus"
)

func TestCoordinator_RespectsConfig(t *testing.T) {
	dc := NewCoordinator(Config{EnableFileTracking: false, EnableTimingTracking: true, EventBufferSize: 4}, nil)
	defer dc.Shutdown()

	dc.FileTracker().TrackOpen("/tmp/a.txt", 3, "write")
	opened, _ := dc.FileTracker().Counts()
	assert.Equal(t, 0, opened)

	ctx := dc.TimingTracker().StartTiming(context.Background(), "export_tsv")
	dc.TimingTracker().EndTiming(ctx)
	assert.Len(t, dc.TimingTracker().GetTimings("export_tsv"), 1)
}

func TestCoordinator_ShutdownFlushesEvents(t *testing.T) {
	dc := NewCoordinator(DefaultConfig(), nil)

	got := make(chan string, 1)
	dc.EventBus().Subscribe("inventory.exported", eventbus.HandlerFunc("test", func(e eventbus.Event) {
		got <- e.Type
	}))
	dc.EventBus().Publish(eventbus.Event{Type: "inventory.exported"})
	dc.Shutdown()

	assert.Equal(t, "inventory.exported", <-got)
}
