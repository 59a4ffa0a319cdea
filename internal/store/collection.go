package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Collection is a typed view over one collection. T is encoded as JSON, so
// its json tags decide the document keys; fields that encode as null are
// left untouched on save.
type Collection[T any] struct {
	store Store
	name  string
}

// NewCollection binds a typed view to a collection name.
func NewCollection[T any](s Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Store returns the underlying document store.
func (c *Collection[T]) Store() Store {
	return c.store
}

func (c *Collection[T]) Save(ctx context.Context, v T) (string, error) {
	doc, err := ToDocument(v)
	if err != nil {
		return "", err
	}
	return c.store.Save(ctx, c.name, doc)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return zero, err
	}
	return FromDocument[T](doc)
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	docs, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, err
	}
	return c.decodeAll(docs), nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}

// Subscribe delivers typed snapshots. Documents that do not decode into T
// are skipped with a warning.
func (c *Collection[T]) Subscribe(ctx context.Context, fn func([]T)) (func(), error) {
	return c.store.Subscribe(ctx, c.name, func(docs []Document) {
		fn(c.decodeAll(docs))
	})
}

func (c *Collection[T]) decodeAll(docs []Document) []T {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := FromDocument[T](doc)
		if err != nil {
			slog.Warn("skipping undecodable document", "collection", c.name, "id", doc.ID(), "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// ToDocument encodes v through its JSON form.
func ToDocument(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return doc, nil
}

// FromDocument decodes doc into a T.
func FromDocument[T any](doc Document) (T, error) {
	var v T
	data, err := json.Marshal(doc)
	if err != nil {
		return v, fmt.Errorf("failed to decode document: %w", err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to decode document %q: %w", doc.ID(), err)
	}
	return v, nil
}
