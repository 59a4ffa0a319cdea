package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/adflow/internal/events"
)

// Watch refreshes r whenever the event daemon reports a change made by
// another process. It blocks until ctx is done or the event stream ends.
func Watch(ctx context.Context, r Refresher, client events.EventPublisher) error {
	ch, err := client.Listen(ctx)
	if err != nil {
		return fmt.Errorf("failed to listen for changes: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			if evt.Type != events.EventDocumentChanged {
				continue
			}
			if err := r.Refresh(ctx, evt.Collection); err != nil {
				slog.Warn("failed to refresh after remote change",
					"collection", evt.Collection,
					"sequence", evt.SequenceID,
					"error", err)
			}
		}
	}
}
