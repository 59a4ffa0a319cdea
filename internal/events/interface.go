package events

import "context"

// EventPublisher is the store's view of the daemon link: it announces
// local writes and delivers the writes of other adflow processes.
type EventPublisher interface {
	Connect(ctx context.Context) error

	// SendEvent queues a change announcement; changes to one collection
	// inside the debounce window go out as a single event.
	SendEvent(event Event) error

	// Listen delivers changes made elsewhere until ctx is done.
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe narrows delivery to the named collections; none means all.
	Subscribe(collections ...string) error

	Close() error
}

var _ EventPublisher = (*Client)(nil)
