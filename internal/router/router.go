package router

import (
	"errors"
	"fmt"
	"sync"

	"inventory-manager/internal/logger"
)

// Screen names a destination the application can navigate to
type Screen string

const (
	ScreenMain Screen = "main"
	ScreenItem Screen = "item"
	ScreenSave Screen = "save"
	ScreenLoad Screen = "load"
)

var (
	ErrUnknownScreen = errors.New("unknown screen")
	ErrNoHistory     = errors.New("no previous screen")
)

// Params carries navigation arguments such as the index of the item being edited
type Params map[string]any

// Int returns the integer stored under key, or fallback when absent or of another type
func (p Params) Int(key string, fallback int) int {
	if v, ok := p[key].(int); ok {
		return v
	}
	return fallback
}

// Text returns the string stored under key, or "" when absent
func (p Params) Text(key string) string {
	v, _ := p[key].(string)
	return v
}

// Builder creates the content of a screen for the given parameters
type Builder[V any] func(params Params) (V, error)

type entry struct {
	screen Screen
	params Params
}

// Router maps screen names to builders and keeps a back stack. Every
// navigation builds a fresh screen and hands it to the sink set by OnNavigate.
type Router[V any] struct {
	mu       sync.Mutex
	builders map[Screen]Builder[V]
	history  []entry
	sink     func(Screen, V)
	logger   logger.Logger
}

func New[V any](log logger.Logger) *Router[V] {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Router[V]{
		builders: make(map[Screen]Builder[V]),
		logger:   log,
	}
}

// Register binds a builder to a screen, replacing any previous one
func (r *Router[V]) Register(screen Screen, build Builder[V]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[screen] = build
}

// OnNavigate sets the function receiving each newly built screen
func (r *Router[V]) OnNavigate(sink func(Screen, V)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink = sink
}

// Navigate builds screen and pushes it onto the history.
func (r *Router[V]) Navigate(screen Screen, params Params) error {
	if err := r.show(screen, params); err != nil {
		return err
	}

	r.mu.Lock()
	r.history = append(r.history, entry{screen: screen, params: params})
	depth := len(r.history)
	r.mu.Unlock()

	r.logger.Debug("Router", "navigated", map[string]interface{}{
		"screen": string(screen),
		"depth":  depth,
	})
	return nil
}

// Back returns to the previous screen, rebuilding it with its original params.
func (r *Router[V]) Back() error {
	r.mu.Lock()
	if len(r.history) < 2 {
		r.mu.Unlock()
		return ErrNoHistory
	}
	prev := r.history[len(r.history)-2]
	r.mu.Unlock()

	if err := r.show(prev.screen, prev.params); err != nil {
		return err
	}

	r.mu.Lock()
	r.history = r.history[:len(r.history)-1]
	r.mu.Unlock()

	r.logger.Debug("Router", "navigated back", map[string]interface{}{
		"screen": string(prev.screen),
	})
	return nil
}

// Reset clears the history and navigates to screen
func (r *Router[V]) Reset(screen Screen, params Params) error {
	r.mu.Lock()
	saved := r.history
	r.history = nil
	r.mu.Unlock()

	if err := r.Navigate(screen, params); err != nil {
		r.mu.Lock()
		r.history = saved
		r.mu.Unlock()
		return err
	}
	return nil
}

// Current returns the screen on top of the history
func (r *Router[V]) Current() (Screen, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return "", false
	}
	return r.history[len(r.history)-1].screen, true
}

// Depth returns the number of screens in the history
func (r *Router[V]) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

func (r *Router[V]) show(screen Screen, params Params) error {
	r.mu.Lock()
	build, ok := r.builders[screen]
	sink := r.sink
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScreen, screen)
	}
	if params == nil {
		params = Params{}
	}

	view, err := build(params)
	if err != nil {
		r.logger.Error("Router", err, map[string]interface{}{
			"screen": string(screen),
		})
		return fmt.Errorf("build %s screen: %w", screen, err)
	}

	if sink != nil {
		sink(screen, view)
	}
	return nil
}
