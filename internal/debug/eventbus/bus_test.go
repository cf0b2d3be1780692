package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) handler(id string) EventHandler {
	return HandlerFunc(id, func(e Event) {
		c.mu.Lock()
		c.events = append(c.events, e)
		c.mu.Unlock()
	})
}

func (c *collector) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, e := range c.events {
		out = append(out, e.Type)
	}
	return out
}

func TestBus_DeliversInOrderBeforeShutdownReturns(t *testing.T) {
	bus := NewBus(16, nil)
	c := &collector{}
	bus.Subscribe("saved", c.handler("c"))

	bus.Publish(Event{Type: "saved", Data: map[string]interface{}{"n": 1}})
	bus.Publish(Event{Type: "ignored"})
	bus.Publish(Event{Type: "saved"})
	bus.Shutdown()

	assert.Equal(t, []string{"saved", "saved"}, c.types())
	assert.False(t, c.events[0].Timestamp.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(16, nil)
	c := &collector{}
	h := c.handler("c")
	bus.Subscribe("saved", h)
	bus.Unsubscribe("saved", h)

	bus.Publish(Event{Type: "saved"})
	bus.Shutdown()

	assert.Empty(t, c.types())
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := NewBus(16, nil)
	c := &collector{}
	bus.Subscribe("saved", HandlerFunc("bad", func(Event) { panic("boom") }))
	bus.Subscribe("saved", c.handler("good"))

	bus.Publish(Event{Type: "saved"})
	bus.Shutdown()

	assert.Equal(t, []string{"saved"}, c.types())
}

func TestBus_PublishAfterShutdownIsDropped(t *testing.T) {
	bus := NewBus(1, nil)
	bus.Shutdown()

	assert.NotPanics(t, func() {
		bus.Publish(Event{Type: "saved"})
	})
}
