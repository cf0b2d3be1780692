package filetracker

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"inventory-manager/internal/logger"
)

// FileInfo describes a handle that has been opened and not yet closed.
type FileInfo struct {
	Path       string
	Handle     uintptr
	Mode       string
	OpenedAt   time.Time
	StackTrace []uintptr
}

// Tracker records the lifecycle of export and import file handles.
type Tracker struct {
	openFiles map[string]FileInfo
	mu        sync.RWMutex
	logger    logger.Logger
	enabled   bool

	opened int
	closed int
}

func NewTracker(log logger.Logger) *Tracker {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Tracker{
		openFiles: make(map[string]FileInfo),
		logger:    log,
		enabled:   true,
	}
}

func (ft *Tracker) TrackOpen(path string, handle uintptr, mode string) {
	if ft == nil {
		return
	}

	ft.mu.Lock()
	if !ft.enabled {
		ft.mu.Unlock()
		return
	}

	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])

	info := FileInfo{
		Path:       path,
		Handle:     handle,
		Mode:       mode,
		OpenedAt:   time.Now(),
		StackTrace: pcs[:n],
	}
	ft.openFiles[path] = info
	ft.opened++
	ft.mu.Unlock()

	ft.logger.Debug("FileTracker", "file opened", map[string]interface{}{
		"path": path,
		"mode": mode,
	})
}

func (ft *Tracker) TrackClose(path string, handle uintptr) {
	if ft == nil {
		return
	}

	ft.mu.Lock()
	if !ft.enabled {
		ft.mu.Unlock()
		return
	}

	info, exists := ft.openFiles[path]
	if !exists || info.Handle != handle {
		ft.mu.Unlock()
		return
	}
	delete(ft.openFiles, path)
	ft.closed++
	ft.mu.Unlock()

	ft.logger.Debug("FileTracker", "file closed", map[string]interface{}{
		"path":     path,
		"duration": time.Since(info.OpenedAt).String(),
	})
}

// OpenFiles returns the handles currently open, ordered by path.
func (ft *Tracker) OpenFiles() []FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make([]FileInfo, 0, len(ft.openFiles))
	for _, v := range ft.openFiles {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result
}

// DetectLeaks returns handles that have stayed open longer than maxAge.
func (ft *Tracker) DetectLeaks(maxAge time.Duration) []FileInfo {
	threshold := time.Now().Add(-maxAge)

	var leaks []FileInfo
	for _, info := range ft.OpenFiles() {
		if !info.OpenedAt.After(threshold) {
			leaks = append(leaks, info)
		}
	}
	return leaks
}

// Counts returns how many handles were opened and closed since creation.
func (ft *Tracker) Counts() (opened, closed int) {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return ft.opened, ft.closed
}

func (ft *Tracker) SetEnabled(enabled bool) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.enabled = enabled
}
