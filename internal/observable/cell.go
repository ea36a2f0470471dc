// Package observable provides reactive value cells shared between a view and
// the components bound to it.
//
// A Cell holds a single value plus an ordered list of subscribers. Writers call
// Set; readers call Get; views Subscribe to re-render when the value changes.
// Subscribers run synchronously on the writer's goroutine, after the cell's
// lock has been released, so a subscriber may read or write the same cell.
package observable

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"
)

// ChangeFunc is invoked with the previous and the new value after a change.
type ChangeFunc[T comparable] func(oldValue, newValue T)

type subscription[T comparable] struct {
	id int
	fn ChangeFunc[T]
}

// Cell is a mutable, observable container for a single value.
// The zero value is not usable; create cells with NewCell.
type Cell[T comparable] struct {
	mu     sync.RWMutex
	value  T
	subs   []subscription[T]
	nextID int
}

// NewCell creates a cell holding the given initial value.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies subscribers when it differs from the current value.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	old := c.value
	if old == v {
		c.mu.Unlock()
		return
	}
	c.value = v
	subs := make([]subscription[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		notify(s.fn, old, v)
	}
}

// Update applies fn to the current value and stores the result.
// The read-modify-write is not atomic with respect to other writers.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.Get()))
}

// Subscribe registers fn to run after every change and returns a function
// that removes the subscription. Calling the returned function twice is safe.
func (c *Cell[T]) Subscribe(fn ChangeFunc[T]) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (c *Cell[T]) SubscriberCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// notify runs a single subscriber, recovering from panics so one faulty
// listener cannot stop the rest from being notified.
func notify[T comparable](fn ChangeFunc[T], oldValue, newValue T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("component", "observable").
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("cell subscriber panicked")
		}
	}()
	fn(oldValue, newValue)
}
