package store

import (
	"slices"
	"sync"
)

// Source is a read-only, observable value.
type Source[T any] interface {
	Get() T
	// Subscribe registers fn for change notifications and returns a function
	// that cancels the subscription.
	Subscribe(fn func(T)) (cancel func())
}

// Cell is an observable value the holder may write.
type Cell[T any] interface {
	Source[T]
	Set(T)
}

// NewCell returns a standalone cell holding initial.
func NewCell[T comparable](initial T) Cell[T] {
	return newCell(&hub{}, initial)
}

type cell[T comparable] struct {
	hub *hub

	mu      sync.RWMutex
	value   T
	subs    map[int]func(T)
	nextID  int
	pending bool
}

func newCell[T comparable](h *hub, initial T) *cell[T] {
	return &cell[T]{hub: h, value: initial, subs: make(map[int]func(T))}
}

func (c *cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

func (c *cell[T]) Set(value T) {
	c.mu.Lock()
	if c.value == value {
		c.mu.Unlock()
		return
	}
	c.value = value
	c.mu.Unlock()
	c.hub.changed(c)
}

func (c *cell[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// publish delivers the current value to a snapshot of the subscribers.
func (c *cell[T]) publish() {
	c.mu.Lock()
	c.pending = false
	value := c.value
	subs := make([]func(T), 0, len(c.subs))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

func (c *cell[T]) markPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return false
	}
	c.pending = true
	return true
}

func (c *cell[T]) group() *hub { return c.hub }

type grouped interface {
	group() *hub
}

// BatchCells runs fn and holds back the notifications of every listed cell
// until fn returns, so subscribers of one cell observe writes made to the
// others. Cells created by this package may belong to different stores or
// be standalone; other Cell implementations notify as they are written.
func BatchCells(fn func(), cells ...any) {
	var hubs []*hub
	for _, c := range cells {
		if g, ok := c.(grouped); ok && !slices.Contains(hubs, g.group()) {
			hubs = append(hubs, g.group())
		}
	}
	run := fn
	for _, h := range hubs {
		inner := run
		run = func() { h.batch(inner) }
	}
	run()
}

type publisher interface {
	publish()
	markPending() bool
}

// hub serialises notifications for a group of cells and holds them back
// while a batch is open.
type hub struct {
	mu    sync.Mutex
	depth int
	queue []publisher
}

func (h *hub) changed(p publisher) {
	h.mu.Lock()
	if h.depth > 0 {
		if p.markPending() {
			h.queue = append(h.queue, p)
		}
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	p.publish()
}

func (h *hub) batch(fn func()) {
	h.mu.Lock()
	h.depth++
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.depth--
		var queue []publisher
		if h.depth == 0 {
			queue, h.queue = h.queue, nil
		}
		h.mu.Unlock()
		for _, p := range queue {
			p.publish()
		}
	}()

	fn()
}
