package events

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"
)

// ErrorCode says why the daemon link could not be made.
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// DaemonError explains a failed daemon connection. Live updates are
// optional, so callers log it and keep going.
type DaemonError struct {
	Code       ErrorCode
	SocketPath string
	Message    string
	Hint       string
	Err        error
}

func (e *DaemonError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

func (e *DaemonError) Unwrap() error {
	return e.Err
}

// ClassifyDaemonError turns a dial error on socketPath into a DaemonError
// whose hint names the data directory the socket lives in.
func ClassifyDaemonError(err error, socketPath string) *DaemonError {
	if err == nil {
		return nil
	}

	dataDir := filepath.Dir(socketPath)
	de := &DaemonError{Err: err, SocketPath: socketPath}

	var errno syscall.Errno
	switch {
	case errors.Is(err, fs.ErrNotExist):
		de.Code = ErrSocketNotFound
		de.Message = fmt.Sprintf("no event daemon socket at %s", socketPath)
		de.Hint = "Start cmd/daemon with the same ADFLOW_DATA_DIR for live updates, or pass --ephemeral to work offline"
	case errors.Is(err, fs.ErrPermission):
		de.Code = ErrSocketPermission
		de.Message = fmt.Sprintf("cannot open daemon socket %s", socketPath)
		de.Hint = fmt.Sprintf("The data directory must belong to you: chmod 700 %s", dataDir)
	case errors.As(err, &errno) && errno == syscall.ECONNREFUSED:
		de.Code = ErrConnectionRefused
		de.Message = "daemon socket refused the connection"
		de.Hint = "The socket is left over from a daemon that exited; starting cmd/daemon again replaces it"
	default:
		de.Code = ErrDaemonNotRunning
		de.Message = "event daemon unavailable"
		de.Hint = "Changes are still saved; other adflow windows pick them up on their next refresh"
	}
	return de
}
