// Package store is the adflow document store: named collections of JSON
// documents with live subscriptions. Backends are sqlite (default), a JSON
// snapshot file (fallback when the database cannot be opened) and memory.
package store

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/adflow/internal/events"
)

// Document is one JSON object in a collection. The "id" key holds its id.
type Document map[string]any

// ID returns the document id, or "" when it has none.
func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

// Listener receives the full current contents of a collection.
type Listener func(docs []Document)

// Store is the document store every service is built on.
type Store interface {
	// Subscribe calls fn with the current list right away and again after
	// every change to the collection, local or remote. The subscription
	// ends when ctx is done or the returned func is called.
	Subscribe(ctx context.Context, collection string, fn Listener) (func(), error)

	// Save upserts doc and returns its id, generating one when doc has none.
	// Null fields are dropped and the rest is merged into any existing document.
	Save(ctx context.Context, collection string, doc Document) (string, error)

	// Delete removes a document, or returns ErrNotFound.
	Delete(ctx context.Context, collection, id string) error

	// List returns every document in insertion order.
	List(ctx context.Context, collection string) ([]Document, error)

	// Get returns one document, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)

	Close() error
}

// Refresher re-reads a collection and pushes it to its subscribers.
// An empty collection refreshes every subscribed collection.
type Refresher interface {
	Refresh(ctx context.Context, collection string) error
}

type options struct {
	publisher events.EventPublisher
	logger    *slog.Logger
}

// Option configures a backend.
type Option func(*options)

// WithPublisher announces every write to the event daemon.
func WithPublisher(p events.EventPublisher) Option {
	return func(o *options) {
		o.publisher = p
	}
}

// WithLogger sets the backend logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compile-time interface checks
var (
	_ Store     = (*SQLiteStore)(nil)
	_ Store     = (*MemoryStore)(nil)
	_ Store     = (*FileStore)(nil)
	_ Refresher = (*SQLiteStore)(nil)
	_ Refresher = (*MemoryStore)(nil)
	_ Refresher = (*FileStore)(nil)
)
