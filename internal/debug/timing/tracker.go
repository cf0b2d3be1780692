package timing

import (
	"context"
	"sync"
	"time"

	"inventory-manager/internal/logger"
)

type timingKey struct{}

type TimingInfo struct {
	Operation string
	StartTime time.Time
}

// Tracker keeps the durations of export and import operations.
type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	logger  logger.Logger
	enabled bool
}

func NewTracker(log logger.Logger) *Tracker {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Tracker{
		timings: make(map[string][]time.Duration),
		logger:  log,
		enabled: true,
	}
}

// StartTiming returns a child of ctx carrying the start time of operation.
func (tt *Tracker) StartTiming(ctx context.Context, operation string) context.Context {
	if tt == nil || !tt.isEnabled() {
		return ctx
	}

	return context.WithValue(ctx, timingKey{}, TimingInfo{
		Operation: operation,
		StartTime: time.Now(),
	})
}

// EndTiming records the elapsed time for the operation started on ctx.
func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	if tt == nil || !tt.isEnabled() {
		return 0
	}

	info, ok := ctx.Value(timingKey{}).(TimingInfo)
	if !ok {
		return 0
	}

	duration := time.Since(info.StartTime)

	tt.mu.Lock()
	tt.timings[info.Operation] = append(tt.timings[info.Operation], duration)
	tt.mu.Unlock()

	tt.logger.Debug("TimingTracker", "operation timed", map[string]interface{}{
		"operation": info.Operation,
		"duration":  duration.String(),
	})
	return duration
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}

// Reset forgets the timings of one operation, or of all when operation is empty.
func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}
