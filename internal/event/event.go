package event

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies an event by the component that reported it.
type Kind string

const (
	// KindSection marks the start of a demo section.
	KindSection Kind = "section"
	// KindNotification is a listener receiving a device status change.
	KindNotification Kind = "notification"
	// KindInfo is an informational line with no state change behind it.
	KindInfo Kind = "info"
	// KindHistory is reported by the undo/redo history.
	KindHistory Kind = "history"
	// KindAlert is reported by a matching alert handler.
	KindAlert Kind = "alert"
	// KindState is reported by the fan speed state machine.
	KindState Kind = "state"
	// KindSchedule is reported by a scheduling strategy.
	KindSchedule Kind = "schedule"
	// KindHub is reported by the device hub.
	KindHub Kind = "hub"
	// KindMemento is reported by the caretaker.
	KindMemento Kind = "memento"
	// KindInterpreter is the result of interpreting a phrase.
	KindInterpreter Kind = "interpreter"
	// KindScript is a print from a Starlark script.
	KindScript Kind = "script"
)

// Event is one line of the observable transcript.
type Event struct {
	// ID uniquely identifies the event.
	ID uuid.UUID
	// Kind classifies the event.
	Kind Kind
	// Source names the reporting component, usually a device or handler name.
	Source string
	// Message is the human-readable transcript line.
	Message string
	// Timestamp is when the event was reported.
	Timestamp time.Time
}

// Reporter accepts events from domain components.
type Reporter interface {
	Report(kind Kind, source, message string)
}

// Sink consumes stamped events.
type Sink interface {
	Emit(e Event)
}

// discard drops every report.
type discard struct{}

// Report implements Reporter.
func (discard) Report(Kind, string, string) {}

// Discard is a Reporter that drops everything.
//
//nolint:gochecknoglobals // Stateless singleton.
var Discard Reporter = discard{}
