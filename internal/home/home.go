package home

import (
	"fmt"

	"github.com/oshokin/smart-home/internal/config"
	"github.com/oshokin/smart-home/internal/domain/action"
	"github.com/oshokin/smart-home/internal/domain/alert"
	"github.com/oshokin/smart-home/internal/domain/device"
	"github.com/oshokin/smart-home/internal/domain/fan"
	"github.com/oshokin/smart-home/internal/domain/hub"
	"github.com/oshokin/smart-home/internal/domain/interpreter"
	"github.com/oshokin/smart-home/internal/domain/schedule"
	"github.com/oshokin/smart-home/internal/event"
)

// Home is the set of collaborators every demo and script drives.
type Home struct {
	// Config is the validated configuration the home was built from.
	Config *config.Config
	// Reporter receives every event of the household.
	Reporter event.Reporter
	// Light is the demonstrated device.
	Light *device.Device
	// App is the listener notified of light changes.
	App *device.App
	// History records reversible actions on the light.
	History *action.History
	// Alerts is the alert chain built from Config.AlertChain.
	Alerts *alert.Chain
	// Fan is the multi-speed switch.
	Fan *fan.Fan
	// Scheduler applies scheduling strategies to the light.
	Scheduler *schedule.Scheduler
	// Hub routes named commands to registered devices.
	Hub *hub.Hub
	// Caretaker snapshots the light status.
	Caretaker *device.Caretaker
}

// New builds a home from cfg. The App listener is attached to the light;
// the light is not registered in the hub yet.
func New(cfg *config.Config, r event.Reporter) *Home {
	light := device.New(cfg.DeviceName)
	app := device.NewApp(r)
	light.AddListener(app)

	routes := make([]alert.Route, 0, len(cfg.AlertChain))
	for _, route := range cfg.AlertChain {
		routes = append(routes, alert.Route{Category: route.Category, Label: route.Label})
	}

	h := &Home{
		Config:    cfg,
		Reporter:  r,
		Light:     light,
		App:       app,
		History:   action.NewHistory(r),
		Alerts:    alert.NewChain(r, routes...),
		Fan:       fan.New("Fan", r),
		Hub:       hub.New(r),
		Caretaker: device.NewCaretaker(light, r),
	}

	h.Scheduler = schedule.New(h.TimedStrategy())

	return h
}

// TimedStrategy returns the strategy announcing Config.ScheduleTime.
func (h *Home) TimedStrategy() *schedule.Timed {
	return &schedule.Timed{At: h.Config.ScheduleTime, Reporter: h.Reporter}
}

// SensorStrategy returns the motion-triggered strategy.
func (h *Home) SensorStrategy() *schedule.Sensor {
	return &schedule.Sensor{Reporter: h.Reporter}
}

// Interpret runs text through the interpreter against the light and reports the outcome.
func (h *Home) Interpret(text string) string {
	result := interpreter.Interpret(text, h.Light)

	h.Reporter.Report(event.KindInterpreter, h.Light.Name(), fmt.Sprintf("'%s' -> %s", text, result))

	return result
}

// Section reports a section header.
func (h *Home) Section(title string) {
	h.Reporter.Report(event.KindSection, "home", title)
}
