package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrQueueFull is returned by SendEvent when the batching queue is saturated
var ErrQueueFull = errors.New("event queue full")

// ErrNotConnected is returned when the client has no live socket
var ErrNotConnected = errors.New("not connected to daemon")

// Client represents a connection to the adflow daemon for receiving live updates.
// It handles event sending, receiving, batching, reconnection, and subscriptions.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	// Subscription state, replayed after a reconnect
	collections []string

	// Event tracking
	lastSequence int64

	ctx    context.Context
	cancel context.CancelFunc

	batcherOnce sync.Once
	batcherDone chan struct{}
}

// NewClient creates a new event client but does not connect.
// The socket path should be the full path to the Unix domain socket.
// Event batching defaults to 100ms and can be tuned with ADFLOW_EVENT_DEBOUNCE_MS.
func NewClient(socketPath string) (*Client, error) {
	if socketPath == "" {
		return nil, fmt.Errorf("socket path cannot be empty")
	}

	debounceMs := 100
	if envVal := os.Getenv("ADFLOW_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}, nil
}

// Connect establishes a connection to the daemon socket and replays the
// current subscription (all collections on first connect).
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	msg := Message{
		Version: ProtocolVersion,
		Type:    "subscribe",
		Subscribe: &SubscribeMessage{
			Collections: slices.Clone(c.collections),
		},
	}
	if err := c.encoder.Encode(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			log.Printf("Error closing connection: %v", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	// reconnects reuse the batcher started by the first Connect
	c.batcherOnce.Do(func() {
		go c.startBatcher()
	})

	return nil
}

// SendEvent queues an event to be sent to the daemon.
// Events are batched and sent in bursts within the debounce window.
// Returns ErrQueueFull if the queue is full (non-blocking send).
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrNotConnected
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// pendingBatch accumulates events inside one debounce window.
type pendingBatch struct {
	pending    bool
	collection string
	documentID string
	mixed      bool
}

func (b *pendingBatch) add(event Event) {
	if !b.pending {
		b.pending = true
		b.collection = event.Collection
		b.documentID = event.DocumentID
		b.mixed = false
		return
	}
	if event.Collection != b.collection {
		b.mixed = true
	}
	if event.DocumentID != b.documentID {
		b.documentID = ""
	}
}

// event collapses the batch into a single notification.
// A batch spanning several collections is sent with no collection (all).
func (b *pendingBatch) event() Event {
	evt := Event{
		Type:       EventDocumentChanged,
		Collection: b.collection,
		DocumentID: b.documentID,
		Timestamp:  time.Now(),
	}
	if b.mixed {
		evt.Collection = ""
		evt.DocumentID = ""
	}
	return evt
}

// startBatcher runs in a goroutine and batches events from the queue.
// It sends a single event every debounce duration if any events are pending.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var batch pendingBatch

	flushPending := func() {
		if !batch.pending {
			return
		}
		if err := c.sendToSocket(Message{Type: "event", Event: ptr(batch.event())}); err != nil {
			if !isConnectionError(err) {
				log.Printf("Failed to send batched event: %v", err)
			}
		}
		batch = pendingBatch{}
	}

	for {
		select {
		case <-c.ctx.Done():
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flushPending()
				return
			}
			batch.add(event)

			// drain anything else queued in this window
		drainLoop:
			for {
				select {
				case evt, ok := <-c.eventQueue:
					if !ok {
						break drainLoop
					}
					batch.add(evt)
				default:
					break drainLoop
				}
			}

		case <-ticker.C:
			flushPending()
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

// sendToSocket writes one message to the daemon socket.
func (c *Client) sendToSocket(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	// Set a short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg.Version = ProtocolVersion
	return c.encoder.Encode(msg)
}

// Listen starts listening for events from the daemon.
// It returns a channel that receives events and handles reconnection automatically.
// The channel is closed when context is done or reconnection fails.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	connected := c.conn != nil
	c.mu.Unlock()
	if !connected {
		return nil, ErrNotConnected
	}

	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.ctx.Done():
			return
		default:
			err := c.readEvents(ctx, eventChan)
			if err == nil || ctx.Err() != nil || c.ctx.Err() != nil {
				return
			}

			log.Printf("Connection lost: %v, reconnecting...", err)
			if c.reconnect(ctx) {
				log.Printf("Reconnected to daemon")
				continue
			}

			log.Printf("Failed to reconnect after %d attempts, giving up", c.maxRetries)
			return
		}
	}
}

// readEvents reads messages from the socket and sends them to the event channel.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return ErrNotConnected
		}
		// Set read deadline to detect hung connections (60 seconds)
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			// basic duplicate detection; the daemon numbers every broadcast
			c.mu.Lock()
			fresh := msg.Event.SequenceID > c.lastSequence
			if fresh {
				c.lastSequence = msg.Event.SequenceID
			}
			c.mu.Unlock()

			if fresh {
				select {
				case eventChan <- *msg.Event:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

		case "ping":
			if err := c.sendToSocket(Message{Type: "pong"}); err != nil {
				if !isConnectionError(err) {
					log.Printf("Failed to send pong: %v", err)
				}
			}
		}
	}
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, ErrNotConnected) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset")
}

// reconnect attempts to reconnect to the daemon with exponential backoff.
// It tries up to maxRetries times, doubling the delay each time.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
					log.Printf("Error closing connection during reconnect: %v", err)
				}
				c.conn = nil
			}
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				log.Printf("Reconnected to daemon (attempt %d/%d)", i+1, c.maxRetries)
				return true
			}

			log.Printf("Reconnection attempt %d/%d failed, retrying in %v", i+1, c.maxRetries, delay)
			delay *= 2 // 1s, 2s, 4s, 8s, 16s
		}
	}

	return false
}

// Subscribe changes the subscription to the given collections.
// No collections means all collections.
func (c *Client) Subscribe(collections ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.collections = slices.Clone(collections)

	if c.conn == nil {
		return ErrNotConnected
	}

	return c.encoder.Encode(Message{
		Version: ProtocolVersion,
		Type:    "subscribe",
		Subscribe: &SubscribeMessage{
			Collections: slices.Clone(collections),
		},
	})
}

// Close closes the connection to the daemon and stops all goroutines.
// Pending batched events are flushed first.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.eventQueue)
	c.mu.Unlock()

	// the batcher only runs after a successful Connect; otherwise there
	// is nothing to wait for
	c.batcherOnce.Do(func() {
		close(c.batcherDone)
	})
	<-c.batcherDone

	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}

	return nil
}
