package interpreter

import (
	"fmt"
	"strings"

	"github.com/oshokin/smart-home/internal/domain/device"
)

// NotRecognized is returned for a phrase with no known keyword.
const NotRecognized = "Command not recognized"

// Interpret applies text to d and returns a description of what happened.
// Keywords are checked in order: turn on / switch on, turn off / switch off, toggle.
func Interpret(text string, d *device.Device) string {
	text = strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(text, "turn on"), strings.Contains(text, "switch on"):
		d.SetStatus(device.StatusOn)

		return fmt.Sprintf("Turning %s ON", d.Name())
	case strings.Contains(text, "turn off"), strings.Contains(text, "switch off"):
		d.SetStatus(device.StatusOff)

		return fmt.Sprintf("Turning %s OFF", d.Name())
	case strings.Contains(text, "toggle"):
		next := device.StatusOn
		if d.Status() == device.StatusOn {
			next = device.StatusOff
		}

		d.SetStatus(next)

		return fmt.Sprintf("Toggling %s to %s", d.Name(), next)
	default:
		return NotRecognized
	}
}
