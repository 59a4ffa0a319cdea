package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/adflow/internal/events"
)

// hub fans collection snapshots out to subscribers and, when a publisher is
// configured, tells the event daemon about local writes.
type hub struct {
	mu        sync.Mutex
	listeners map[string]map[uint64]Listener
	next      uint64

	publisher events.EventPublisher
	logger    *slog.Logger
}

func newHub(o options) *hub {
	return &hub{
		listeners: make(map[string]map[uint64]Listener),
		publisher: o.publisher,
		logger:    o.logger,
	}
}

// add registers fn and returns the func that removes it. The registration
// is also removed once ctx is done.
func (h *hub) add(ctx context.Context, collection string, fn Listener) func() {
	h.mu.Lock()
	h.next++
	id := h.next
	if h.listeners[collection] == nil {
		h.listeners[collection] = make(map[uint64]Listener)
	}
	h.listeners[collection][id] = fn
	h.mu.Unlock()

	var once sync.Once
	remove := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners[collection], id)
			if len(h.listeners[collection]) == 0 {
				delete(h.listeners, collection)
			}
			h.mu.Unlock()
		})
	}
	stop := context.AfterFunc(ctx, remove)
	return func() {
		stop()
		remove()
	}
}

// collections lists every collection with at least one subscriber.
func (h *hub) collections() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.listeners))
	for name := range h.listeners {
		names = append(names, name)
	}
	return names
}

func (h *hub) subscribed(collection string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners[collection]) > 0
}

// broadcast hands each subscriber its own copy of docs. Listeners run on
// the caller's goroutine, outside the lock.
func (h *hub) broadcast(collection string, docs []Document) {
	h.mu.Lock()
	fns := make([]Listener, 0, len(h.listeners[collection]))
	for _, fn := range h.listeners[collection] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(cloneAll(docs))
	}
}

// announce publishes a change event; failures are logged, the write stands.
func (h *hub) announce(collection, id string) {
	if h.publisher == nil {
		return
	}
	err := events.DefaultRetry.Publish(h.publisher, events.Event{
		Type:       events.EventDocumentChanged,
		Collection: collection,
		DocumentID: id,
	})
	if err != nil {
		h.logger.Warn("failed to publish change", "collection", collection, "id", id, "error", err)
	}
}
