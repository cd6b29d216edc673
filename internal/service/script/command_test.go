package script

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/smart-home/internal/event"
)

// writeScript stores src in a temporary .star file.
func writeScript(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.star")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

// run executes src and returns the recorded events.
func run(t *testing.T, src string) (*event.Recorder, error) {
	t.Helper()

	rec := event.NewRecorder()
	err := Run(context.Background(), &Options{
		ScriptPath: writeScript(t, src),
		Output:     &bytes.Buffer{},
		Sinks:      []event.Sink{rec},
	})

	return rec, err
}

// TestRun_UndoRedoScenario drives the history from Starlark.
func TestRun_UndoRedoScenario(t *testing.T) {
	t.Parallel()

	rec, err := run(t, `
section("History")
turn_on()
print(status())
print(undo())
print(status())
redo()
print(status())
print(redo())
`)
	require.NoError(t, err)

	require.Equal(t, []string{"ON", "True", "OFF", "ON", "False"}, rec.Messages(event.KindScript))
	require.Equal(t, []string{"Nothing to redo"}, rec.Messages(event.KindInfo))
	require.Equal(t, []string{"History"}, rec.Messages(event.KindSection))
}

// TestRun_AlertsAndPeripherals exercises the remaining builtins.
func TestRun_AlertsAndPeripherals(t *testing.T) {
	t.Parallel()

	rec, err := run(t, `
print(alert("police", "Emergency"))
print(alert("unknown", "Test message"))
print(press_fan())
print(say("switch on the light"))
register()
print(send("living_room_light", "turn_off"))
print(send("garage", "turn_on"))
print(save())
set_status("DIM")
print(restore())
print(restore(index=5))
schedule("sensor")
`)
	require.NoError(t, err)

	require.Equal(t, []string{
		"True",
		"False",
		"LOW",
		"Turning Living Room Light ON",
		"True",
		"False",
		"OFF",
		"True",
		"False",
	}, rec.Messages(event.KindScript))

	require.Equal(t, []string{"Police notified! Emergency"}, rec.Messages(event.KindAlert))
	require.Equal(t, []string{"Living Room Light turns ON if motion detected"}, rec.Messages(event.KindSchedule))
	require.Equal(t, []string{
		"Config saved: OFF",
		"Config restored -> OFF",
		"No saved state at index 5",
	}, rec.Messages(event.KindMemento))
}

// TestRun_Errors covers missing path, syntax errors, and builtin failures.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{})
	require.ErrorIs(t, err, errNoScript)

	_, err = run(t, "turn_on(")
	require.Error(t, err)

	_, err = run(t, `schedule("weekly")`)
	require.ErrorIs(t, err, errUnknownStrategy)

	_, err = run(t, `alert("motion")`)
	require.Error(t, err)

	err = Run(context.Background(), &Options{
		ScriptPath: filepath.Join(t.TempDir(), "missing.star"),
		Output:     &bytes.Buffer{},
	})
	require.Error(t, err)
}
