package events

import (
	"fmt"
	"time"
)

// RetryPolicy controls how often a change announcement is resent when the
// daemon connection hiccups. The delay doubles after each failed attempt.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry tries three times, waiting 50ms then 100ms.
var DefaultRetry = RetryPolicy{Attempts: 3, BaseDelay: 50 * time.Millisecond}

// Publish sends event through client, retrying per the policy. A nil
// client means live updates are off and is not an error.
func (p RetryPolicy) Publish(client EventPublisher, event Event) error {
	if client == nil {
		return nil
	}

	attempts := max(p.Attempts, 1)
	delay := p.BaseDelay
	var err error
	for i := range attempts {
		if err = client.SendEvent(event); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return fmt.Errorf("publish %s for %s failed after %d attempts: %w", event.Type, event.Collection, attempts, err)
}
