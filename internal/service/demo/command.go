package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/oshokin/smart-home/internal/domain/action"
	"github.com/oshokin/smart-home/internal/domain/device"
	"github.com/oshokin/smart-home/internal/domain/hub"
	"github.com/oshokin/smart-home/internal/event"
	"github.com/oshokin/smart-home/internal/home"
	"github.com/oshokin/smart-home/internal/logger"
	"github.com/oshokin/smart-home/internal/service/common"
)

// Options controls the demo run.
type Options struct {
	// ConfigPath specifies the settings YAML file; empty uses defaults.
	ConfigPath string
	// Format overrides the configured transcript format.
	Format string
	// Sections restricts the run to the named sections, in demo order.
	Sections []string
	// Output receives the transcript; nil means stdout.
	Output io.Writer
	// Sinks receive every event in addition to the transcript.
	Sinks []event.Sink
}

// Banner is reported before the first section.
const Banner = "===== SMART HOME AUTOMATION SYSTEM ====="

// section is one demonstrated pattern.
type section struct {
	// name is the CLI identifier.
	name string
	// title is the transcript header.
	title string
	// run drives the home.
	run func(h *home.Home)
}

// errUnknownSection is returned when Options.Sections names no section.
var errUnknownSection = errors.New("unknown section")

// alertScript is the sequence dispatched by the chain section.
//
//nolint:gochecknoglobals // Fixed demo data.
var alertScript = []struct {
	category string
	message  string
}{
	{"motion", "Movement in living room"},
	{"alarm", "Intrusion detected"},
	{"police", "Emergency situation"},
	{"unknown", "Test message"},
}

// sections returns the demo in execution order.
func sections() []section {
	return []section{
		{name: "observer", title: "Observer Pattern:", run: observer},
		{name: "command", title: "Command Pattern:", run: command},
		{name: "state", title: "State Pattern:", run: state},
		{name: "strategy", title: "Strategy Pattern:", run: strategy},
		{name: "mediator", title: "Mediator Pattern:", run: mediator},
		{name: "memento", title: "Memento Pattern:", run: memento},
		{name: "interpreter", title: "Interpreter Pattern:", run: interpret},
		{name: "chain", title: "Chain of Responsibility Pattern:", run: chain},
	}
}

// SectionNames lists the section identifiers in demo order.
func SectionNames() []string {
	all := sections()
	names := make([]string, 0, len(all))

	for _, s := range all {
		names = append(names, s.name)
	}

	return names
}

// Run executes the demonstration and returns the first transcript write error.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "demo")

	selected, err := selectSections(opts.Sections)
	if err != nil {
		return err
	}

	session, err := common.Open(ctx, &common.SessionOptions{
		ConfigPath: opts.ConfigPath,
		Format:     opts.Format,
		Output:     opts.Output,
		Sinks:      opts.Sinks,
	})
	if err != nil {
		return err
	}

	h := session.Home
	h.Section(Banner)

	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("demo interrupted: %w", err)
		}

		logger.InfoKV(ctx, "Running section", "section", s.name)

		h.Section(s.title)
		s.run(h)
	}

	if err := session.Transcript.Err(); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Demo finished", "sections", len(selected), "light", h.Light.Status())

	return nil
}

// selectSections keeps demo order regardless of the order names were given in.
func selectSections(names []string) ([]section, error) {
	all := sections()
	if len(names) == 0 {
		return all, nil
	}

	for _, name := range names {
		if !slices.ContainsFunc(all, func(s section) bool { return s.name == name }) {
			return nil, fmt.Errorf("%w: %q", errUnknownSection, name)
		}
	}

	return slices.DeleteFunc(all, func(s section) bool { return !slices.Contains(names, s.name) }), nil
}

func observer(h *home.Home) {
	h.Light.AddListener(h.App)
	h.Light.SetStatus(device.StatusOn)
}

func command(h *home.Home) {
	h.History.Execute(action.NewTurnOff(h.Light))
	h.History.Undo()
}

func state(h *home.Home) {
	for i := 0; i < 5; i++ {
		h.Fan.Press()
	}
}

func strategy(h *home.Home) {
	h.Scheduler.SetStrategy(h.TimedStrategy())
	h.Scheduler.Apply(h.Light)
	h.Scheduler.SetStrategy(h.SensorStrategy())
	h.Scheduler.Apply(h.Light)
}

func mediator(h *home.Home) {
	h.Hub.Register(h.Config.HubName, h.Light)
	h.Hub.Send(h.Config.HubName, hub.CommandTurnOn)
}

func memento(h *home.Home) {
	h.Caretaker.Save()
	h.Light.SetStatus(device.StatusOff)
	h.Caretaker.RestoreLatest()
}

func interpret(h *home.Home) {
	for _, text := range h.Config.InterpreterCommands {
		h.Interpret(text)
	}
}

func chain(h *home.Home) {
	for _, a := range alertScript {
		h.Reporter.Report(event.KindInfo, "alerts", "Alert level: "+a.category)
		h.Alerts.Dispatch(a.category, a.message)
	}
}
