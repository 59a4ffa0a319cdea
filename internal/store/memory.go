package store

import (
	"context"
	"fmt"
	"sync"
)

type memCollection struct {
	order []string
	docs  map[string]Document
}

// MemoryStore keeps documents in process memory. It backs tests and the
// --ephemeral flag, and is the engine underneath FileStore.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
	closed      bool
	hub         *hub

	// persist, when set, must durably write the proposed state before a
	// write is applied; an error aborts the write.
	persist func(state map[string][]Document) error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memCollection),
		hub:         newHub(buildOptions(opts)),
	}
}

func (s *MemoryStore) Subscribe(ctx context.Context, collection string, fn Listener) (func(), error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	unsubscribe := s.hub.add(ctx, collection, fn)
	fn(docs)
	return unsubscribe, nil
}

func (s *MemoryStore) Save(ctx context.Context, collection string, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := prepare(collection, doc)
	if err != nil {
		return "", err
	}
	id := clean.ID()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrClosed
	}
	col := s.collections[collection]
	if col == nil {
		col = &memCollection{docs: make(map[string]Document)}
	}
	existing, exists := col.docs[id]
	merged := merge(existing, clean)

	if s.persist != nil {
		state := s.stateLocked()
		if exists {
			state[collection] = replaceDoc(state[collection], merged)
		} else {
			state[collection] = append(state[collection], merged)
		}
		if err := s.persist(state); err != nil {
			s.mu.Unlock()
			return "", fmt.Errorf("failed to persist document: %w", err)
		}
	}

	if !exists {
		col.order = append(col.order, id)
	}
	col.docs[id] = merged
	s.collections[collection] = col
	docs := s.listLocked(collection)
	s.mu.Unlock()

	s.hub.broadcast(collection, docs)
	s.hub.announce(collection, id)
	return id, nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if collection == "" {
		return ErrEmptyCollection
	}
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	col := s.collections[collection]
	if col == nil || col.docs[id] == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	if s.persist != nil {
		state := s.stateLocked()
		state[collection] = removeDoc(state[collection], id)
		if err := s.persist(state); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("failed to persist delete: %w", err)
		}
	}

	delete(col.docs, id)
	for i, existing := range col.order {
		if existing == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	docs := s.listLocked(collection)
	s.mu.Unlock()

	s.hub.broadcast(collection, docs)
	s.hub.announce(collection, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return s.listLocked(collection), nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	col := s.collections[collection]
	if col == nil || col.docs[id] == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	return cloneDocument(col.docs[id]), nil
}

// Refresh pushes the current contents to subscribers again.
func (s *MemoryStore) Refresh(ctx context.Context, collection string) error {
	names := []string{collection}
	if collection == "" {
		names = s.hub.collections()
	}
	for _, name := range names {
		if !s.hub.subscribed(name) {
			continue
		}
		docs, err := s.List(ctx, name)
		if err != nil {
			return err
		}
		s.hub.broadcast(name, docs)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// load replaces the whole state, used by FileStore at startup.
func (s *MemoryStore) load(state map[string][]Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = make(map[string]*memCollection, len(state))
	for name, docs := range state {
		col := &memCollection{docs: make(map[string]Document, len(docs))}
		for _, doc := range docs {
			id := doc.ID()
			if id == "" {
				continue
			}
			if _, dup := col.docs[id]; !dup {
				col.order = append(col.order, id)
			}
			col.docs[id] = cloneDocument(doc)
		}
		s.collections[name] = col
	}
}

func (s *MemoryStore) listLocked(collection string) []Document {
	col := s.collections[collection]
	if col == nil {
		return []Document{}
	}
	docs := make([]Document, 0, len(col.order))
	for _, id := range col.order {
		docs = append(docs, cloneDocument(col.docs[id]))
	}
	return docs
}

func (s *MemoryStore) stateLocked() map[string][]Document {
	state := make(map[string][]Document, len(s.collections))
	for name := range s.collections {
		state[name] = s.listLocked(name)
	}
	return state
}

func replaceDoc(docs []Document, doc Document) []Document {
	for i, existing := range docs {
		if existing.ID() == doc.ID() {
			docs[i] = doc
			return docs
		}
	}
	return append(docs, doc)
}

func removeDoc(docs []Document, id string) []Document {
	out := docs[:0]
	for _, d := range docs {
		if d.ID() != id {
			out = append(out, d)
		}
	}
	return out
}
