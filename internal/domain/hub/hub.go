package hub

import (
	"fmt"
	"slices"

	"github.com/oshokin/smart-home/internal/domain/device"
	"github.com/oshokin/smart-home/internal/event"
)

// Command is a hub command keyword.
type Command string

const (
	// CommandTurnOn switches a device ON.
	CommandTurnOn Command = "turn_on"
	// CommandTurnOff switches a device OFF.
	CommandTurnOff Command = "turn_off"
)

// hubSource is the event source of hub reports.
const hubSource = "hub"

// Hub routes commands to registered devices.
type Hub struct {
	// devices maps hub names to devices.
	devices map[string]*device.Device
	// reporter receives hub events.
	reporter event.Reporter
}

// New creates an empty hub.
func New(r event.Reporter) *Hub {
	return &Hub{
		devices:  make(map[string]*device.Device),
		reporter: r,
	}
}

// Register adds d under name, replacing any previous device with that name.
func (h *Hub) Register(name string, d *device.Device) {
	h.devices[name] = d

	h.reporter.Report(event.KindHub, hubSource, "Registered "+name)
}

// Send delivers cmd to the device registered as name. It returns false for an
// unknown device or command; both are reported, neither is an error.
func (h *Hub) Send(name string, cmd Command) bool {
	d, ok := h.devices[name]
	if !ok {
		h.reporter.Report(event.KindInfo, hubSource, fmt.Sprintf("Device %s not found", name))

		return false
	}

	switch cmd {
	case CommandTurnOn:
		d.SetStatus(device.StatusOn)
	case CommandTurnOff:
		d.SetStatus(device.StatusOff)
	default:
		h.reporter.Report(event.KindInfo, hubSource, fmt.Sprintf("Unknown command: %s", cmd))

		return false
	}

	return true
}

// Devices returns the registered names, sorted.
func (h *Hub) Devices() []string {
	names := make([]string, 0, len(h.devices))
	for name := range h.devices {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
