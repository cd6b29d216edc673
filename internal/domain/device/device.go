package device

import (
	"fmt"
	"slices"
	"sync"
)

// Status is the mutable state of a device. Any string is accepted.
type Status string

const (
	// StatusOn is the switched-on status.
	StatusOn Status = "ON"
	// StatusOff is the switched-off status and the initial one.
	StatusOff Status = "OFF"
)

// Notification describes a status change delivered to listeners.
type Notification struct {
	// Device is the name of the device that changed.
	Device string
	// Status is the new status.
	Status Status
}

// String renders the notification as "<device> -> <status>".
func (n Notification) String() string {
	return fmt.Sprintf("%s -> %s", n.Device, n.Status)
}

// Listener receives status changes. Implementations must be comparable
// (pointer types) because registration is keyed on identity.
type Listener interface {
	Notify(n Notification)
}

// Device is a named entity with a status and a listener registry.
type Device struct {
	// name is the immutable identifier.
	name string
	// status is the current status.
	status Status
	// listeners are notified in registration order.
	listeners []Listener
	// mu guards status and listeners.
	mu sync.Mutex
}

// New creates a device that starts OFF with no listeners.
func New(name string) *Device {
	return &Device{
		name:   name,
		status: StatusOff,
	}
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// Status returns the current status.
func (d *Device) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.status
}

// SetStatus changes the status and notifies listeners if it actually changed.
// It reports whether a change happened.
func (d *Device) SetStatus(status Status) bool {
	d.mu.Lock()

	if d.status == status {
		d.mu.Unlock()

		return false
	}

	d.status = status
	listeners := append([]Listener(nil), d.listeners...)
	d.mu.Unlock()

	n := Notification{Device: d.name, Status: status}
	for _, l := range listeners {
		l.Notify(n)
	}

	return true
}

// AddListener registers l. Registering the same listener twice has no effect.
func (d *Device) AddListener(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if slices.Contains(d.listeners, l) {
		return
	}

	d.listeners = append(d.listeners, l)
}

// RemoveListener unregisters l. Unknown listeners are ignored.
func (d *Device) RemoveListener(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i := slices.Index(d.listeners, l); i >= 0 {
		d.listeners = slices.Delete(d.listeners, i, i+1)
	}
}

// Listeners returns the number of registered listeners.
func (d *Device) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.listeners)
}

// overwrite sets the status without notifying anyone.
func (d *Device) overwrite(status Status) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.status = status
}
