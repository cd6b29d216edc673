package script

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"

	"github.com/oshokin/smart-home/internal/domain/action"
	"github.com/oshokin/smart-home/internal/domain/device"
	"github.com/oshokin/smart-home/internal/domain/hub"
	"github.com/oshokin/smart-home/internal/domain/schedule"
	"github.com/oshokin/smart-home/internal/home"
)

// errUnknownStrategy is returned by schedule() for an unknown strategy name.
var errUnknownStrategy = errors.New("unknown strategy")

// builtinFunc is the Go side of a Starlark builtin.
type builtinFunc = func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// builtins exposes the household to Starlark. Actions on the light go
// through the history so undo() and redo() see them.
func builtins(h *home.Home) starlark.StringDict {
	funcs := map[string]builtinFunc{
		"status": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}

			return starlark.String(h.Light.Status()), nil
		},
		"set_status": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var status string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "status", &status); err != nil {
				return nil, err
			}

			h.History.Execute(action.NewSetStatus(h.Light, device.Status(status)))

			return starlark.None, nil
		},
		"turn_on": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}

			h.History.Execute(action.NewTurnOn(h.Light))

			return starlark.None, nil
		},
		"turn_off": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}

			h.History.Execute(action.NewTurnOff(h.Light))

			return starlark.None, nil
		},
		"undo": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}

			return starlark.Bool(h.History.Undo()), nil
		},
		"redo": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}

			return starlark.Bool(h.History.Redo()), nil
		},
		"alert": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var category, message string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "category", &category, "message", &message); err != nil {
				return nil, err
			}

			return starlark.Bool(h.Alerts.Dispatch(category, message)), nil
		},
		"press_fan": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}

			return starlark.String(h.Fan.Press()), nil
		},
		"say": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var text string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
				return nil, err
			}

			return starlark.String(h.Interpret(text)), nil
		},
		"register": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			name := h.Config.HubName
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name?", &name); err != nil {
				return nil, err
			}

			h.Hub.Register(name, h.Light)

			return starlark.None, nil
		},
		"send": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name, cmd string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "device", &name, "command", &cmd); err != nil {
				return nil, err
			}

			return starlark.Bool(h.Hub.Send(name, hub.Command(cmd))), nil
		},
		"save": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}

			return starlark.String(h.Caretaker.Save().Status), nil
		},
		"restore": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			index := -1
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "index?", &index); err != nil {
				return nil, err
			}

			return starlark.Bool(h.Caretaker.Restore(index)), nil
		},
		"schedule": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var kind string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "strategy", &kind); err != nil {
				return nil, err
			}

			var strategy schedule.Strategy

			switch kind {
			case "timed":
				strategy = h.TimedStrategy()
			case "sensor":
				strategy = h.SensorStrategy()
			default:
				return nil, fmt.Errorf("%s: %w: %q", b.Name(), errUnknownStrategy, kind)
			}

			h.Scheduler.SetStrategy(strategy)
			h.Scheduler.Apply(h.Light)

			return starlark.None, nil
		},
		"section": func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var title string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "title", &title); err != nil {
				return nil, err
			}

			h.Section(title)

			return starlark.None, nil
		},
	}

	globals := make(starlark.StringDict, len(funcs))
	for name, fn := range funcs {
		globals[name] = starlark.NewBuiltin(name, fn)
	}

	return globals
}
