// Package daemon implements the adflow event daemon: a unix-socket hub
// that fans store change events out to every open adflow process.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/adflow/internal/events"
)

// Health timings; tests shorten them.
var (
	pingInterval    = 30 * time.Second
	healthInterval  = 60 * time.Second
	staleAfter      = 90 * time.Second
	metricsInterval = 5 * time.Minute
)

// client represents a connected client to the daemon
type client struct {
	conn         net.Conn
	send         chan events.Message
	subscription events.SubscribeMessage
	lastPong     time.Time
	mu           sync.Mutex // Protects subscription and lastPong
	closeOnce    sync.Once  // Ensures send channel is closed only once
}

// envelope carries an event together with the client that published it,
// so the publisher does not get its own change echoed back.
type envelope struct {
	event events.Event
	from  *client
}

// Server represents the adflow event daemon
type Server struct {
	socketPath       string
	listener         net.Listener
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	broadcast        chan envelope
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	clientBufferSize int
	shutdownOnce     sync.Once
	wg               sync.WaitGroup
}

// getEnvInt reads an integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer creates a new daemon server listening on socketPath
func NewServer(socketPath string) (*Server, error) {
	dir := filepath.Dir(socketPath)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	broadcastBuffer := getEnvInt("ADFLOW_DAEMON_BROADCAST_BUFFER", 100)
	clientBuffer := getEnvInt("ADFLOW_DAEMON_CLIENT_BUFFER", 10)

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan envelope, broadcastBuffer),
		metrics:          NewMetrics(),
		clientBufferSize: clientBuffer,
	}, nil
}

// Metrics returns the live daemon counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the daemon server until ctx is cancelled or Shutdown is called.
// It runs three loops: accept, broadcast, and health monitoring.
func (s *Server) Start(ctx context.Context) error {
	log.Printf("Daemon starting, listening on %s", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-s.ctx.Done():
			cancel()
		case <-combinedCtx.Done():
		}
	}()

	acceptErr := make(chan error, 1)
	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		acceptErr <- s.acceptLoop(combinedCtx)
	}()
	go func() {
		defer s.wg.Done()
		s.broadcastLoop(combinedCtx)
	}()
	go func() {
		defer s.wg.Done()
		s.monitorHealth(combinedCtx)
	}()

	select {
	case <-combinedCtx.Done():
		log.Println("Daemon context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			log.Printf("Accept loop error: %v", err)
		}
	}

	cancel()
	err := s.Shutdown()
	s.wg.Wait()
	return err
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	unixListener, _ := s.listener.(*net.UnixListener)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Set a deadline so we can check for context cancellation
		if unixListener != nil {
			if err := unixListener.SetDeadline(time.Now().Add(1 * time.Second)); err != nil && !errors.Is(err, net.ErrClosed) {
				log.Printf("Error setting listener deadline: %v", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()

		s.updateClientCount()
		log.Printf("Client connected, total clients: %d", s.getClientCount())

		s.wg.Add(2)
		go func() {
			defer s.wg.Done()
			s.handleClient(c)
		}()
		go func() {
			defer s.wg.Done()
			s.clientWriter(c)
		}()
	}
}

// broadcastLoop distributes events to subscribed clients
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case env, ok := <-s.broadcast:
			if !ok {
				return
			}
			event := env.event
			event.SequenceID = s.sequenceCounter.Add(1)
			if event.Timestamp.IsZero() {
				event.Timestamp = time.Now()
			}

			s.metrics.IncRefreshesTotal()

			s.mu.RLock()
			for c := range s.clients {
				if c == env.from {
					continue
				}

				c.mu.Lock()
				wants := c.subscription.Wants(event.Collection)
				c.mu.Unlock()
				if !wants {
					continue
				}

				msg := events.Message{
					Version: events.ProtocolVersion,
					Type:    "event",
					Event:   &event,
				}
				// Non-blocking send - if client is slow, skip
				if !s.sendToClient(c, msg) {
					s.metrics.IncEventsDropped()
					log.Printf("Client send queue full, event dropped")
				}
			}
			s.mu.RUnlock()
		}
	}
}

// handleClient reads messages from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		log.Printf("Client disconnected, total clients: %d", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			log.Printf("Warning: received message with protocol version %d, expected %d", msg.Version, events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			s.metrics.IncEventsReceived()
			s.enqueue(envelope{event: *msg.Event, from: c})

		case "subscribe":
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.subscription = *msg.Subscribe
				c.mu.Unlock()
				log.Printf("Client subscribed to collections %v", msg.Subscribe.Collections)
			}

		case "pong":
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

// clientWriter sends messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth sends ping messages, removes stale clients and logs metrics
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	healthTicker := time.NewTicker(healthInterval)
	defer healthTicker.Stop()

	metricsTicker := time.NewTicker(metricsInterval)
	defer metricsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			pingMsg := events.Message{
				Version: events.ProtocolVersion,
				Type:    "ping",
				Event:   &events.Event{Type: events.EventPing},
			}
			for _, c := range s.snapshotClients() {
				if !s.sendToClient(c, pingMsg) {
					log.Printf("Failed to send ping to client (queue full)")
				}
			}

		case <-healthTicker.C:
			// two-phase: collect under the lock, remove outside it
			now := time.Now()
			var stale []*client
			for _, c := range s.snapshotClients() {
				c.mu.Lock()
				lastPong := c.lastPong
				c.mu.Unlock()
				if now.Sub(lastPong) > staleAfter {
					stale = append(stale, c)
				}
			}
			for _, c := range stale {
				log.Printf("Removing stale client")
				s.removeClient(c)
			}

		case <-metricsTicker.C:
			snap := s.metrics.GetSnapshot()
			slog.Info("daemon metrics",
				"clients", snap.ConnectedClients,
				"events_received", snap.EventsReceived,
				"events_sent", snap.EventsSent,
				"events_dropped", snap.EventsDropped,
				"uptime", snap.Uptime)
		}
	}
}

// Broadcast publishes an event to every subscribed client (non-blocking)
func (s *Server) Broadcast(event events.Event) error {
	if !s.enqueue(envelope{event: event}) {
		return fmt.Errorf("broadcast channel full")
	}
	return nil
}

func (s *Server) enqueue(env envelope) bool {
	select {
	case <-s.ctx.Done():
		return false
	default:
	}

	select {
	case s.broadcast <- env:
		return true
	default:
		log.Printf("Broadcast channel full")
		return false
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		log.Println("Shutting down daemon...")

		s.cancel()

		if s.listener != nil {
			if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
				log.Printf("Error closing listener: %v", closeErr)
			}
		}

		s.mu.Lock()
		for c := range s.clients {
			if closeErr := c.conn.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
				log.Printf("Error closing client connection: %v", closeErr)
			}
			c.closeOnce.Do(func() {
				close(c.send)
			})
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()
		s.updateClientCount()

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			log.Printf("Warning: failed to remove socket file: %v", removeErr)
			err = removeErr
		}
	})

	return err
}

// Helper methods

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.getClientCount()))
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing client connection: %v", err)
	}
	c.closeOnce.Do(func() {
		close(c.send)
	})

	s.updateClientCount()
}

// sendToClient attempts to send a message to a client (non-blocking)
// Returns true if successful, false if the queue is full or closed
func (s *Server) sendToClient(c *client, msg events.Message) (sent bool) {
	// the send channel may be closed concurrently by removeClient
	defer func() {
		if recover() != nil {
			sent = false
		}
	}()

	select {
	case c.send <- msg:
		s.metrics.IncEventsSent()
		return true
	default:
		return false
	}
}
