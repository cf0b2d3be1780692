package eventbus

import (
	"context"
	"sync"
	"time"

	"inventory-manager/internal/logger"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc turns a function into an EventHandler identified by id
func HandlerFunc(id string, fn func(Event)) EventHandler {
	return funcHandler{id: id, fn: fn}
}

type funcHandler struct {
	id string
	fn func(Event)
}

func (h funcHandler) Handle(event Event) { h.fn(event) }
func (h funcHandler) GetID() string      { return h.id }

// Bus delivers events to subscribers on a background worker. Publish never
// blocks; events are dropped when the buffer is full or the bus is closed.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	logger      logger.Logger
	dropped     int
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
		logger:      log,
	}

	bus.startWorker()
	return bus
}

func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if b.ctx.Err() != nil {
		return
	}

	select {
	case b.buffer <- event:
	default:
		b.mu.Lock()
		b.dropped++
		b.mu.Unlock()
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Dropped returns how many events were discarded because the buffer was full
func (b *Bus) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// Shutdown stops the worker after it has delivered the events already queued
func (b *Bus) Shutdown() {
	b.cancel()
	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatchEvent(event)
			case <-b.ctx.Done():
				b.drain()
				return
			}
		}
	}()
}

func (b *Bus) drain() {
	for {
		select {
		case event := <-b.buffer:
			b.dispatchEvent(event)
		default:
			return
		}
	}
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.handle(handler, event)
	}
}

func (b *Bus) handle(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warning("EventBus", "event handler panicked", map[string]interface{}{
				"handler": h.GetID(),
				"event":   event.Type,
				"panic":   r,
			})
		}
	}()
	h.Handle(event)
}
