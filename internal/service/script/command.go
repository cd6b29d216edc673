package script

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.starlark.net/starlark"

	"github.com/oshokin/smart-home/internal/event"
	"github.com/oshokin/smart-home/internal/logger"
	"github.com/oshokin/smart-home/internal/service/common"
)

// Options controls a script run.
type Options struct {
	// ConfigPath specifies the settings YAML file; empty uses defaults.
	ConfigPath string
	// ScriptPath is the Starlark file to execute.
	ScriptPath string
	// Format overrides the configured transcript format.
	Format string
	// Output receives the transcript; nil means stdout.
	Output io.Writer
	// Sinks receive every event in addition to the transcript.
	Sinks []event.Sink
}

// errNoScript is returned when Options.ScriptPath is empty.
var errNoScript = errors.New("script path must be provided")

// Run executes the script and returns its first error.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "script")

	if opts.ScriptPath == "" {
		return errNoScript
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

	thread := &starlark.Thread{
		Name: opts.ScriptPath,
		Print: func(_ *starlark.Thread, msg string) {
			h.Reporter.Report(event.KindScript, "script", msg)
		},
	}

	// Cancellation is checked between Starlark steps.
	stop := context.AfterFunc(ctx, func() { thread.Cancel("context canceled") })
	defer stop()

	logger.InfoKV(ctx, "Running script", "path", opts.ScriptPath)

	if _, err := starlark.ExecFile(thread, opts.ScriptPath, nil, builtins(h)); err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			logger.ErrorKV(ctx, "Script failed", "backtrace", evalErr.Backtrace())
		}

		return fmt.Errorf("execute script %s: %w", opts.ScriptPath, err)
	}

	return session.Transcript.Err()
}
