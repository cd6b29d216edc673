//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/oshokin/smart-home/internal/config"
	"github.com/oshokin/smart-home/internal/event"
	"github.com/oshokin/smart-home/internal/home"
	"github.com/oshokin/smart-home/internal/logger"
	"github.com/oshokin/smart-home/internal/transcript"
)

// SessionOptions selects configuration and output of a session.
type SessionOptions struct {
	// ConfigPath is the settings YAML file; empty uses config.Default.
	ConfigPath string
	// Format overrides the configured transcript format when set.
	Format string
	// Output receives the transcript; nil means stdout.
	Output io.Writer
	// Sinks receive events after the transcript and the log sink.
	Sinks []event.Sink
}

// Session is a home wired to its transcript.
type Session struct {
	// Home is the household driven by the session.
	Home *home.Home
	// Transcript renders events for the console.
	Transcript transcript.Writer
}

// Open loads configuration and builds a home reporting to the transcript,
// the zap event log and any extra sinks.
func Open(ctx context.Context, opts *SessionOptions) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("apply format override: %w", err)
		}
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	writer, err := transcript.New(cfg.Format, out)
	if err != nil {
		return nil, fmt.Errorf("create transcript: %w", err)
	}

	bus := event.NewBus(writer, event.NewLogSink(eventLogger(ctx, cfg)))
	for _, sink := range opts.Sinks {
		bus.Attach(sink)
	}

	logger.DebugKV(ctx, "Session opened",
		"device", cfg.DeviceName,
		"format", cfg.Format,
		"alert_chain", len(cfg.AlertChain),
	)

	return &Session{
		Home:       home.New(cfg, bus),
		Transcript: writer,
	}, nil
}

// eventLogger returns the logger of the event sink, pinned to cfg.LogLevel when set.
func eventLogger(ctx context.Context, cfg *config.Config) *zap.SugaredLogger {
	l := logger.FromContext(ctx).Named("events")

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		l = l.WithOptions(logger.WithLevel(level))
	}

	return l
}
