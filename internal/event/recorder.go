package event

import "sync"

// Recorder is a Sink keeping every event in memory.
type Recorder struct {
	// events holds emitted events in order.
	events []Event
	// mu protects events.
	mu sync.Mutex
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return new(Recorder)
}

// Emit implements Sink.
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Messages returns the recorded messages, optionally filtered by kind.
func (r *Recorder) Messages(kinds ...Kind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string

	for _, e := range r.events {
		if len(kinds) > 0 && !hasKind(kinds, e.Kind) {
			continue
		}

		out = append(out, e.Message)
	}

	return out
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}

	return false
}
