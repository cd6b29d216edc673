package device

import (
	"fmt"

	"github.com/oshokin/smart-home/internal/event"
)

// Memento is a saved device status.
type Memento struct {
	// Status is the saved status.
	Status Status
}

// Caretaker keeps the saved statuses of one device.
type Caretaker struct {
	// device is the device being snapshotted.
	device *Device
	// saved holds snapshots oldest first.
	saved []Memento
	// reporter receives memento events.
	reporter event.Reporter
}

// NewCaretaker creates a caretaker for d.
func NewCaretaker(d *Device, r event.Reporter) *Caretaker {
	return &Caretaker{
		device:   d,
		reporter: r,
	}
}

// Save snapshots the current status.
func (c *Caretaker) Save() Memento {
	m := Memento{Status: c.device.Status()}
	c.saved = append(c.saved, m)

	c.reporter.Report(event.KindMemento, c.device.Name(), fmt.Sprintf("Config saved: %s", m.Status))

	return m
}

// Restore writes back the snapshot at index. Negative indices count from the
// end, so -1 is the latest snapshot. Listeners are not notified.
func (c *Caretaker) Restore(index int) bool {
	if len(c.saved) == 0 {
		c.reporter.Report(event.KindMemento, c.device.Name(), "No saved states to restore")

		return false
	}

	i := index
	if i < 0 {
		i += len(c.saved)
	}

	if i < 0 || i >= len(c.saved) {
		c.reporter.Report(event.KindMemento, c.device.Name(), fmt.Sprintf("No saved state at index %d", index))

		return false
	}

	m := c.saved[i]
	c.device.overwrite(m.Status)

	c.reporter.Report(event.KindMemento, c.device.Name(), fmt.Sprintf("Config restored -> %s", m.Status))

	return true
}

// RestoreLatest restores the most recent snapshot.
func (c *Caretaker) RestoreLatest() bool {
	return c.Restore(-1)
}

// Saved returns the number of snapshots.
func (c *Caretaker) Saved() int {
	return len(c.saved)
}
