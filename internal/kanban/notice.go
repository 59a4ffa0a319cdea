package kanban

import "fmt"

// NoticeKind enumerates the user-facing events the controller reports.
type NoticeKind int

const (
	NoticeMoved NoticeKind = iota
	NoticeMoveFailed
	NoticeSelected
	NoticeDeselected
	NoticeCancelled
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeMoved:
		return "moved"
	case NoticeMoveFailed:
		return "move_failed"
	case NoticeSelected:
		return "selected"
	case NoticeDeselected:
		return "deselected"
	case NoticeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Notice is a transient message for the user, typically shown as a toast.
type Notice struct {
	Kind    NoticeKind
	ItemID  string
	Status  string // target status for moves
	Message string
	Err     error // set for NoticeMoveFailed
}

// IsError reports whether the notice should be shown as an error.
func (n Notice) IsError() bool {
	return n.Kind == NoticeMoveFailed
}

// Notifier receives controller notices. Implementations must be safe for
// concurrent use since moves may resolve off the caller's goroutine.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

func movedNotice(id, status string) Notice {
	return Notice{
		Kind:    NoticeMoved,
		ItemID:  id,
		Status:  status,
		Message: fmt.Sprintf("Status updated to %s!", status),
	}
}

func moveFailedNotice(id, status string, err error) Notice {
	return Notice{
		Kind:    NoticeMoveFailed,
		ItemID:  id,
		Status:  status,
		Message: "Failed to update status.",
		Err:     err,
	}
}

func selectedNotice(noun, id string) Notice {
	return Notice{
		Kind:    NoticeSelected,
		ItemID:  id,
		Message: fmt.Sprintf("%s selected. Use arrow keys to move.", noun),
	}
}

func deselectedNotice(noun, id string) Notice {
	return Notice{
		Kind:    NoticeDeselected,
		ItemID:  id,
		Message: fmt.Sprintf("%s deselected.", noun),
	}
}

func cancelledNotice(id string) Notice {
	return Notice{
		Kind:    NoticeCancelled,
		ItemID:  id,
		Message: "Move cancelled.",
	}
}
