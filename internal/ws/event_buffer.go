package ws

import (
	"sync"
	"time"
)

const (
	defaultBufferMaxLen = 1000
	defaultBufferMaxAge = 1 * time.Hour
)

// EventBuffer stores recent events for replay on reconnect. Old events
// are trimmed on append by count and by age.
type EventBuffer struct {
	mu     sync.RWMutex
	events []Event
	maxAge time.Duration
	maxLen int
}

// NewEventBuffer creates an EventBuffer with the given limits.
func NewEventBuffer(maxLen int, maxAge time.Duration) *EventBuffer {
	return &EventBuffer{
		maxAge: maxAge,
		maxLen: maxLen,
	}
}

// Append adds an event to the buffer, evicting entries beyond the
// length or age limit.
func (eb *EventBuffer) Append(evt *Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.events = append(eb.events, *evt)

	if len(eb.events) > eb.maxLen {
		eb.events = eb.events[len(eb.events)-eb.maxLen:]
	}

	cutoff := time.Now().Add(-eb.maxAge)
	for len(eb.events) > 0 && eb.events[0].Time.Before(cutoff) {
		eb.events = eb.events[1:]
	}
}

// OldestID returns the ID of the oldest buffered event, or 0 when the
// buffer is empty.
func (eb *EventBuffer) OldestID() uint64 {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if len(eb.events) == 0 {
		return 0
	}

	return eb.events[0].ID
}

// Since returns all buffered events with IDs greater than lastID.
func (eb *EventBuffer) Since(lastID uint64) []Event {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	// Events are appended in ID order, so find the first newer entry.
	idx := len(eb.events)

	for i, evt := range eb.events {
		if evt.ID > lastID {
			idx = i

			break
		}
	}

	out := make([]Event, len(eb.events)-idx)
	copy(out, eb.events[idx:])

	return out
}
