package events

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDaemonError(t *testing.T) {
	const socket = "/home/ann/.adflow/adflow.sock"

	tests := []struct {
		name     string
		err      error
		code     ErrorCode
		hintHas  string
		errorHas string
	}{
		{"missing socket", fmt.Errorf("dial: %w", os.ErrNotExist), ErrSocketNotFound, "--ephemeral", socket},
		{"permission", fmt.Errorf("dial: %w", os.ErrPermission), ErrSocketPermission, "chmod 700 /home/ann/.adflow", socket},
		{"refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), ErrConnectionRefused, "cmd/daemon", "refused"},
		{"anything else", errors.New("boom"), ErrDaemonNotRunning, "still saved", "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDaemonError(tt.err, socket)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, socket, got.SocketPath)
			assert.Contains(t, got.Hint, tt.hintHas)
			assert.Contains(t, got.Error(), tt.errorHas)
			assert.Contains(t, got.Error(), got.Hint)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.Nil(t, ClassifyDaemonError(nil, socket))
}
