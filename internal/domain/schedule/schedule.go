package schedule

import (
	"fmt"

	"github.com/oshokin/smart-home/internal/domain/device"
	"github.com/oshokin/smart-home/internal/event"
)

// Strategy decides when a device turns on.
type Strategy interface {
	Run(d *device.Device)
}

// Timed turns the device on at a fixed time of day.
type Timed struct {
	// At is the announced time, e.g. "7 PM".
	At string
	// Reporter receives schedule events.
	Reporter event.Reporter
}

// Run implements Strategy.
func (s *Timed) Run(d *device.Device) {
	s.Reporter.Report(event.KindSchedule, d.Name(), fmt.Sprintf("%s turns ON at %s", d.Name(), s.At))
}

// Sensor turns the device on when motion is detected.
type Sensor struct {
	// Reporter receives schedule events.
	Reporter event.Reporter
}

// Run implements Strategy.
func (s *Sensor) Run(d *device.Device) {
	s.Reporter.Report(event.KindSchedule, d.Name(), d.Name()+" turns ON if motion detected")
}

// Scheduler applies the current strategy.
type Scheduler struct {
	strategy Strategy
}

// New creates a scheduler using s, which may be nil.
func New(s Strategy) *Scheduler {
	return &Scheduler{strategy: s}
}

// SetStrategy swaps the strategy.
func (s *Scheduler) SetStrategy(strategy Strategy) {
	s.strategy = strategy
}

// Apply runs the current strategy on d. Without a strategy it does nothing.
func (s *Scheduler) Apply(d *device.Device) bool {
	if s.strategy == nil {
		return false
	}

	s.strategy.Run(d)

	return true
}
