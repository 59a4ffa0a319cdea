package state

import "sync"

// ConnectionStatus represents the link to the event daemon
type ConnectionStatus int

const (
	Disconnected ConnectionStatus = iota
	Connected
)

func (cs ConnectionStatus) String() string {
	if cs == Connected {
		return "Connected"
	}
	return "Disconnected"
}

// ConnectionState tracks whether live updates are flowing. It is written
// from the watcher goroutine and read while rendering.
type ConnectionState struct {
	mu     sync.RWMutex
	status ConnectionStatus
}

// NewConnectionState creates a ConnectionState with the given status
func NewConnectionState(status ConnectionStatus) *ConnectionState {
	return &ConnectionState{status: status}
}

// Status returns the current connection status
func (cs *ConnectionState) Status() ConnectionStatus {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.status
}

// SetStatus updates the connection status
func (cs *ConnectionState) SetStatus(status ConnectionStatus) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.status = status
}
