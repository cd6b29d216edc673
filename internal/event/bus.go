package event

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Bus stamps reports into events and delivers them to sinks in attach order.
type Bus struct {
	// sinks receive every event.
	sinks []Sink
	// now supplies timestamps, replaceable in tests.
	now func() time.Time
	// mu serialises delivery so sinks observe one global order.
	mu sync.Mutex
}

// NewBus creates a bus delivering to the given sinks.
func NewBus(sinks ...Sink) *Bus {
	return &Bus{
		sinks: sinks,
		now:   time.Now,
	}
}

// Attach adds a sink after the existing ones.
func (b *Bus) Attach(s Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sinks = append(b.sinks, s)
}

// Report implements Reporter.
func (b *Bus) Report(kind Kind, source, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := Event{
		ID:        uuid.New(),
		Kind:      kind,
		Source:    source,
		Message:   message,
		Timestamp: b.now(),
	}

	for _, s := range b.sinks {
		s.Emit(e)
	}
}
