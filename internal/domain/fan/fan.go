package fan

import (
	"fmt"

	"github.com/oshokin/smart-home/internal/event"
)

// Speed is one state of the fan.
type Speed interface {
	// Press returns the state after one button press.
	Press() Speed
	// String returns the speed name.
	String() string
}

type (
	off    struct{}
	low    struct{}
	medium struct{}
	high   struct{}
)

func (off) Press() Speed    { return low{} }
func (low) Press() Speed    { return medium{} }
func (medium) Press() Speed { return high{} }
func (high) Press() Speed   { return off{} }

func (off) String() string    { return "OFF" }
func (low) String() string    { return "LOW" }
func (medium) String() string { return "MEDIUM" }
func (high) String() string   { return "HIGH" }

// Off is the initial speed.
//
//nolint:gochecknoglobals // Stateless state value.
var Off Speed = off{}

// Fan is a switch holding its current speed.
type Fan struct {
	// name is used as the event source.
	name string
	// speed is the current state.
	speed Speed
	// reporter receives state events.
	reporter event.Reporter
}

// New creates a fan that starts OFF.
func New(name string, r event.Reporter) *Fan {
	return &Fan{
		name:     name,
		speed:    Off,
		reporter: r,
	}
}

// Press advances the fan to its next speed and returns the new speed name.
func (f *Fan) Press() string {
	f.speed = f.speed.Press()

	f.reporter.Report(event.KindState, f.name, fmt.Sprintf("Fan -> %s", f.speed))

	return f.speed.String()
}

// Speed returns the current speed.
func (f *Fan) Speed() Speed {
	return f.speed
}
