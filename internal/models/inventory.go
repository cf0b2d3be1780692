package models

import (
	"errors"
	"fmt"
	"sync"
)

var ErrIndexOutOfRange = errors.New("item index out of range")

// Inventory is the ordered item list shared by every screen of a session.
type Inventory struct {
	mu        sync.RWMutex
	items     []Item
	listeners []func()
}

// NewInventory creates an inventory holding a copy of items
func NewInventory(items ...Item) *Inventory {
	inv := &Inventory{
		items: make([]Item, 0, len(items)),
	}
	inv.items = append(inv.items, items...)
	return inv
}

// OnChange registers fn to run after every mutation. Listeners run
// synchronously on the mutating goroutine, after the lock is released.
func (inv *Inventory) OnChange(fn func()) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.listeners = append(inv.listeners, fn)
}

func (inv *Inventory) notify() {
	inv.mu.RLock()
	listeners := make([]func(), len(inv.listeners))
	copy(listeners, inv.listeners)
	inv.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// Len returns the number of items
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

// Get returns the item at index
func (inv *Inventory) Get(index int) (Item, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if index < 0 || index >= len(inv.items) {
		return Item{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return inv.items[index], nil
}

// Items returns a copy of the current contents in order
func (inv *Inventory) Items() []Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	items := make([]Item, len(inv.items))
	copy(items, inv.items)
	return items
}

// Add appends an item
func (inv *Inventory) Add(item Item) {
	inv.mu.Lock()
	inv.items = append(inv.items, item)
	inv.mu.Unlock()

	inv.notify()
}

// Replace overwrites the item at index in place
func (inv *Inventory) Replace(index int, item Item) error {
	inv.mu.Lock()
	if index < 0 || index >= len(inv.items) {
		inv.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	inv.items[index] = item
	inv.mu.Unlock()

	inv.notify()
	return nil
}

// Remove deletes the first item equal to item and reports whether one was found.
func (inv *Inventory) Remove(item Item) bool {
	inv.mu.Lock()
	index := -1
	for i, existing := range inv.items {
		if existing == item {
			index = i
			break
		}
	}
	if index < 0 {
		inv.mu.Unlock()
		return false
	}
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	inv.mu.Unlock()

	inv.notify()
	return true
}

// Clear removes every item
func (inv *Inventory) Clear() {
	inv.mu.Lock()
	inv.items = inv.items[:0]
	inv.mu.Unlock()

	inv.notify()
}

// ReplaceAll swaps the whole contents, used when a saved inventory is loaded.
func (inv *Inventory) ReplaceAll(items []Item) {
	inv.mu.Lock()
	inv.items = make([]Item, len(items))
	copy(inv.items, items)
	inv.mu.Unlock()

	inv.notify()
}

// IndexOfSerial is IndexOfSerial over the current contents.
func (inv *Inventory) IndexOfSerial(target Item) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return IndexOfSerial(inv.items, target)
}

// Filter is Filter over the current contents.
func (inv *Inventory) Filter(query string, mode SearchMode) []Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return Filter(inv.items, query, mode)
}
