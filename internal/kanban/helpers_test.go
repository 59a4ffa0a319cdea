package kanban

import (
	"context"
	"errors"
	"sync"
)

var (
	campaignColumns = MustColumns("Planning", "In Progress", "Live", "Completed")
	taskColumns     = MustColumns("To Do", "In Progress", "Done")
)

type card struct {
	ID     string
	Status string
	Title  string
	Budget float64
	Tags   []string
}

func (c card) GetID() string     { return c.ID }
func (c card) GetStatus() string { return c.Status }

func (c card) WithStatus(status string) card {
	c.Status = status
	return c
}

var errStoreDown = errors.New("store unavailable")

// fakeSaver records saves; gate, when set, blocks each save until a value
// is received.
type fakeSaver struct {
	mu    sync.Mutex
	saved []card
	err   error
	gate  chan struct{}
}

func (s *fakeSaver) Save(ctx context.Context, item card) error {
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, item)
	return nil
}

func (s *fakeSaver) Saved() []card {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]card, len(s.saved))
	copy(out, s.saved)
	return out
}

type recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) Kinds() []NoticeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]NoticeKind, 0, len(r.notices))
	for _, n := range r.notices {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

func (r *recorder) Last() Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notices[len(r.notices)-1]
}

func newTestController(cols Columns, saver *fakeSaver, rec *recorder) *Controller[card] {
	return NewController(NewEngine[card](cols), saver, rec, WithNoun("Task"))
}
