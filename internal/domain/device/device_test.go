package device

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/smart-home/internal/event"
)

// countingListener records every notification it receives.
type countingListener struct {
	// got holds received notifications in order.
	got []Notification
}

// Notify implements Listener.
func (c *countingListener) Notify(n Notification) {
	c.got = append(c.got, n)
}

// orderListener appends its tag to a shared log.
type orderListener struct {
	tag string
	log *[]string
}

// Notify implements Listener.
func (o *orderListener) Notify(Notification) {
	*o.log = append(*o.log, o.tag)
}

// TestNew_StartsOff checks the initial state.
func TestNew_StartsOff(t *testing.T) {
	t.Parallel()

	d := New("Living Room Light")
	require.Equal(t, "Living Room Light", d.Name())
	require.Equal(t, StatusOff, d.Status())
	require.Zero(t, d.Listeners())
}

// TestSetStatus_NotifiesOnlyOnChange verifies one notification per actual change.
func TestSetStatus_NotifiesOnlyOnChange(t *testing.T) {
	t.Parallel()

	d := New("Living Room Light")
	l := new(countingListener)
	d.AddListener(l)

	require.True(t, d.SetStatus(StatusOn))
	require.False(t, d.SetStatus(StatusOn))
	require.True(t, d.SetStatus(StatusOff))
	require.False(t, d.SetStatus(StatusOff))

	require.Equal(t, []Notification{
		{Device: "Living Room Light", Status: StatusOn},
		{Device: "Living Room Light", Status: StatusOff},
	}, l.got)
	require.Equal(t, "Living Room Light -> OFF", l.got[1].String())
}

// TestSetStatus_RegistrationOrder checks listeners are called in the order they were added.
func TestSetStatus_RegistrationOrder(t *testing.T) {
	t.Parallel()

	var log []string

	d := New("Fan")
	d.AddListener(&orderListener{tag: "a", log: &log})
	d.AddListener(&orderListener{tag: "b", log: &log})
	d.AddListener(&orderListener{tag: "c", log: &log})

	d.SetStatus("HIGH")
	require.Equal(t, []string{"a", "b", "c"}, log)
}

// TestListeners_Idempotent verifies duplicate adds and unknown removes are no-ops.
func TestListeners_Idempotent(t *testing.T) {
	t.Parallel()

	d := New("Living Room Light")
	l := new(countingListener)
	other := new(countingListener)

	d.AddListener(l)
	d.AddListener(l)
	require.Equal(t, 1, d.Listeners())

	d.RemoveListener(other)
	require.Equal(t, 1, d.Listeners())

	d.SetStatus(StatusOn)
	require.Len(t, l.got, 1)

	d.RemoveListener(l)
	d.RemoveListener(l)
	require.Zero(t, d.Listeners())

	d.SetStatus(StatusOff)
	require.Len(t, l.got, 1)
}

// TestApp_ReportsNotification checks the App listener's transcript line.
func TestApp_ReportsNotification(t *testing.T) {
	t.Parallel()

	rec := event.NewRecorder()
	d := New("Living Room Light")
	d.AddListener(NewApp(event.NewBus(rec)))

	d.SetStatus(StatusOn)

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, event.KindNotification, events[0].Kind)
	require.Equal(t, "[Notification] Living Room Light -> ON", events[0].Message)
}
