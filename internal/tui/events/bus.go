// Package events delivers pointer events to the TUI components that
// subscribed to them. Every subscription hands back a release func; a
// released or closed subscription is never called again.
package events

import (
	"context"
	"sync"
)

// Kind identifies an event type.
type Kind int

const (
	// PointerDown is a button press anywhere in the program's window.
	PointerDown Kind = iota
	// PointerMove is pointer motion with no button held.
	PointerMove
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointer_down"
	case PointerMove:
		return "pointer_move"
	default:
		return "unknown"
	}
}

// Event is a pointer event in terminal cell coordinates.
type Event struct {
	Kind Kind
	X, Y int
}

// Handler receives published events.
type Handler func(Event)

type subscription struct {
	kind    Kind
	handler Handler
}

// Bus is a synchronous publish/subscribe hub. Handlers run on the
// publishing goroutine, in subscription order.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	order  []uint64
	subs   map[uint64]subscription
	closed bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[uint64]subscription)}
}

// Subscribe registers handler for kind and returns its release func.
// Release is idempotent. Subscribing to a closed bus returns a no-op
// release and never calls handler.
func (b *Bus) Subscribe(kind Kind, handler Handler) (release func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || handler == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs[id] = subscription{kind: kind, handler: handler}
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

// SubscribeContext is Subscribe with automatic release when ctx is done.
func (b *Bus) SubscribeContext(ctx context.Context, kind Kind, handler Handler) (release func()) {
	unsubscribe := b.Subscribe(kind, handler)
	stop := make(chan struct{})
	var once sync.Once
	release = func() {
		once.Do(func() {
			close(stop)
			unsubscribe()
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			release()
		case <-stop:
		}
	}()
	return release
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[id]; !ok {
		return
	}
	delete(b.subs, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish calls every live handler subscribed to e.Kind and returns how
// many were called. Handlers may release subscriptions while running.
func (b *Bus) Publish(e Event) int {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		if s := b.subs[id]; s.kind == e.Kind && s.handler != nil {
			handlers = append(handlers, s.handler)
		}
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
	return len(handlers)
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close releases every subscription and rejects new ones.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = make(map[uint64]subscription)
	b.order = nil
}
