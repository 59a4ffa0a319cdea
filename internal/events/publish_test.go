package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyPublisher fails the first failUntil sends
type flakyPublisher struct {
	sends     int
	failUntil int
	last      Event
}

var errSend = errors.New("simulated send failure")

func (m *flakyPublisher) SendEvent(event Event) error {
	m.last = event
	m.sends++
	if m.sends <= m.failUntil {
		return errSend
	}
	return nil
}

func (m *flakyPublisher) Connect(context.Context) error                { return nil }
func (m *flakyPublisher) Listen(context.Context) (<-chan Event, error) { return nil, nil }
func (m *flakyPublisher) Subscribe(...string) error                    { return nil }
func (m *flakyPublisher) Close() error                                 { return nil }

func TestRetryPolicy_Publish(t *testing.T) {
	tests := []struct {
		name      string
		failUntil int
		attempts  int
		wantErr   bool
		wantSends int
	}{
		{"first attempt succeeds", 0, 3, false, 1},
		{"succeeds after retries", 2, 3, false, 3},
		{"gives up", 5, 3, true, 3},
		{"zero attempts still sends once", 0, 0, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &flakyPublisher{failUntil: tt.failUntil}
			policy := RetryPolicy{Attempts: tt.attempts, BaseDelay: time.Millisecond}

			err := policy.Publish(pub, Event{Type: EventDocumentChanged, Collection: "tasks"})
			if tt.wantErr {
				require.ErrorIs(t, err, errSend)
				assert.Contains(t, err.Error(), "tasks")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantSends, pub.sends)
			assert.Equal(t, "tasks", pub.last.Collection)
		})
	}
}

func TestRetryPolicy_NilClient(t *testing.T) {
	assert.NoError(t, DefaultRetry.Publish(nil, Event{Type: EventDocumentChanged}))
}
