package action

import (
	"fmt"

	"github.com/oshokin/smart-home/internal/domain/device"
)

// Action is a reversible state change on one device.
type Action interface {
	// Execute applies the change and captures what Undo needs.
	Execute()
	// Undo reverts the last Execute. It does nothing if Execute never ran.
	Undo()
	// String describes the action for transcripts and logs.
	String() string
}

// SetStatus moves a device to a target status and remembers the prior one.
type SetStatus struct {
	// device is shared with the caller and outlives the action.
	device *device.Device
	// target is the status Execute applies.
	target device.Status
	// prior is the status seen by the last Execute.
	prior device.Status
	// captured is set once Execute has recorded prior. An empty prior is valid.
	captured bool
	// name is the short action name used by String.
	name string
}

// NewSetStatus creates an action moving d to status.
func NewSetStatus(d *device.Device, status device.Status) *SetStatus {
	return &SetStatus{
		device: d,
		target: status,
		name:   fmt.Sprintf("set %s", status),
	}
}

// NewTurnOn creates an action switching d ON.
func NewTurnOn(d *device.Device) *SetStatus {
	a := NewSetStatus(d, device.StatusOn)
	a.name = "turn on"

	return a
}

// NewTurnOff creates an action switching d OFF.
func NewTurnOff(d *device.Device) *SetStatus {
	a := NewSetStatus(d, device.StatusOff)
	a.name = "turn off"

	return a
}

// Execute implements Action.
func (a *SetStatus) Execute() {
	a.prior = a.device.Status()
	a.captured = true
	a.device.SetStatus(a.target)
}

// Undo implements Action.
func (a *SetStatus) Undo() {
	if !a.captured {
		return
	}

	a.device.SetStatus(a.prior)
}

// Prior returns the captured prior status and whether one was captured.
func (a *SetStatus) Prior() (device.Status, bool) {
	return a.prior, a.captured
}

// String implements Action.
func (a *SetStatus) String() string {
	return fmt.Sprintf("%s %s", a.name, a.device.Name())
}
