package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/smart-home/internal/event"
)

// fullTranscript is the text output of the default demo.
const fullTranscript = `===== SMART HOME AUTOMATION SYSTEM =====

Observer Pattern:
[Notification] Living Room Light -> ON

Command Pattern:
[Notification] Living Room Light -> OFF
Executed turn off Living Room Light
[Notification] Living Room Light -> ON
Undid turn off Living Room Light

State Pattern:
Fan -> LOW
Fan -> MEDIUM
Fan -> HIGH
Fan -> OFF
Fan -> LOW

Strategy Pattern:
Living Room Light turns ON at 7 PM
Living Room Light turns ON if motion detected

Mediator Pattern:
Registered living_room_light

Memento Pattern:
Config saved: ON
[Notification] Living Room Light -> OFF
Config restored -> ON

Interpreter Pattern:
'turn on light' -> Turning Living Room Light ON
[Notification] Living Room Light -> OFF
'turn off light' -> Turning Living Room Light OFF
[Notification] Living Room Light -> ON
'toggle light' -> Toggling Living Room Light to ON

Chain of Responsibility Pattern:
Alert level: motion
Motion detected! Movement in living room
Alert level: alarm
Alarm triggered! Intrusion detected
Alert level: police
Police notified! Emergency situation
Alert level: unknown
`

// TestRun_FullTranscript compares the whole text transcript.
func TestRun_FullTranscript(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), &Options{Output: &out}))
	require.Equal(t, fullTranscript, out.String())
}

// TestRun_Deterministic runs twice and expects identical text.
func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	require.NoError(t, Run(context.Background(), &Options{Output: &first}))
	require.NoError(t, Run(context.Background(), &Options{Output: &second}))
	require.Equal(t, first.String(), second.String())
}

// TestRun_ChainSection checks only matching handlers speak, once each.
func TestRun_ChainSection(t *testing.T) {
	t.Parallel()

	rec := event.NewRecorder()
	require.NoError(t, Run(context.Background(), &Options{
		Sections: []string{"chain"},
		Output:   &bytes.Buffer{},
		Sinks:    []event.Sink{rec},
	}))

	alerts := rec.Events()
	var sources []string

	for _, e := range alerts {
		if e.Kind == event.KindAlert {
			sources = append(sources, e.Source)
		}
	}

	require.Equal(t, []string{"motion", "alarm", "police"}, sources)
}

// TestRun_SectionsKeepDemoOrder passes names out of order.
func TestRun_SectionsKeepDemoOrder(t *testing.T) {
	t.Parallel()

	rec := event.NewRecorder()
	require.NoError(t, Run(context.Background(), &Options{
		Sections: []string{"state", "observer"},
		Output:   &bytes.Buffer{},
		Sinks:    []event.Sink{rec},
	}))

	require.Equal(t, []string{
		Banner,
		"Observer Pattern:",
		"State Pattern:",
	}, rec.Messages(event.KindSection))
}

// TestRun_UnknownSection fails before producing output.
func TestRun_UnknownSection(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run(context.Background(), &Options{Sections: []string{"visitor"}, Output: &out})
	require.ErrorIs(t, err, errUnknownSection)
	require.Empty(t, out.String())
}

// TestRun_JSON emits one object per event.
func TestRun_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	rec := event.NewRecorder()
	require.NoError(t, Run(context.Background(), &Options{
		Format: "json",
		Output: &out,
		Sinks:  []event.Sink{rec},
	}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(rec.Events()))
}

// TestRun_Canceled stops before the first section.
func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, &Options{Output: &bytes.Buffer{}})
	require.ErrorIs(t, err, context.Canceled)
}

// TestSectionNames lists every section in order.
func TestSectionNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"observer", "command", "state", "strategy",
		"mediator", "memento", "interpreter", "chain",
	}, SectionNames())
}
