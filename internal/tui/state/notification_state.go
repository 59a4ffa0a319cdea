package state

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/adflow/internal/kanban"
)

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// DefaultToastDuration is how long a toast stays on screen
const DefaultToastDuration = 3 * time.Second

// maxToasts caps the stack; the oldest toast is dropped first
const maxToasts = 4

// Notification represents a single toast with a severity level.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Message string
	Expires time.Time
}

// NotificationState manages the toast stack.
type NotificationState struct {
	notifications []Notification
	nextID        int
	ttl           time.Duration
	now           func() time.Time

	windowWidth  int
	windowHeight int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		ttl: DefaultToastDuration,
		now: time.Now,
	}
}

// SetClock replaces the time source. Tests use it to expire toasts.
func (s *NotificationState) SetClock(now func() time.Time) {
	s.now = now
}

// Add pushes a toast and returns its id.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      s.nextID,
		Level:   level,
		Message: message,
		Expires: s.now().Add(s.ttl),
	})
	if len(s.notifications) > maxToasts {
		s.notifications = s.notifications[len(s.notifications)-maxToasts:]
	}
	return s.nextID
}

// AddNotice maps a board notice onto a toast. Failed moves are errors,
// cancellations are warnings and everything else is info.
func (s *NotificationState) AddNotice(n kanban.Notice) int {
	level := LevelInfo
	switch {
	case n.IsError():
		level = LevelError
	case n.Kind == kanban.NoticeCancelled:
		level = LevelWarning
	}
	return s.Add(level, n.Message)
}

// Expire drops every toast whose time is up and reports whether any went.
func (s *NotificationState) Expire() bool {
	now := s.now()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if now.Before(n.Expires) {
			kept = append(kept, n)
		}
	}
	removed := len(kept) != len(s.notifications)
	s.notifications = kept
	return removed
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// TTL returns how long a toast lives.
func (s *NotificationState) TTL() time.Duration {
	return s.ttl
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Toasts stack downwards from the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	if s.windowWidth == 0 {
		return layers
	}

	row := 1
	for _, notification := range s.notifications {
		view := renderFunc(notification)
		height := lipgloss.Height(view)
		if row+height >= s.windowHeight {
			break
		}

		col := max(s.windowWidth-lipgloss.Width(view)-1, 0)
		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row).Z(10))
		row += height
	}
	return layers
}
