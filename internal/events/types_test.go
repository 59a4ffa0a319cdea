package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeMessage_Wants(t *testing.T) {
	tests := []struct {
		name        string
		collections []string
		event       string
		want        bool
	}{
		{"all collections", nil, "tasks", true},
		{"matching collection", []string{"tasks", "notes"}, "notes", true},
		{"other collection", []string{"tasks"}, "campaigns", false},
		{"multi-collection event", []string{"tasks"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := SubscribeMessage{Collections: tt.collections}
			assert.Equal(t, tt.want, sub.Wants(tt.event))
		})
	}
}

func TestMessage_WireFormat(t *testing.T) {
	msg := Message{
		Version: ProtocolVersion,
		Type:    "event",
		Event: &Event{
			Type:       EventDocumentChanged,
			Collection: "campaigns",
			Timestamp:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			SequenceID: 7,
		},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "Subscribe", "nil subscribe must be omitted")

	event := raw["Event"].(map[string]any)
	assert.NotContains(t, event, "DocumentID", "empty document id must be omitted")
	assert.Equal(t, "campaigns", event["Collection"])
}
