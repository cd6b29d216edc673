package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/smart-home/internal/service/script"
)

// scriptCmd runs a Starlark scenario.
//
//nolint:gochecknoglobals // Cobra command tree.
var scriptCmd = &cobra.Command{
	Use:   "script <file.star>",
	Short: "Run a Starlark scenario against the home.",
	Long: `Executes a Starlark file with builtins bound to the home:

  status() set_status(s) turn_on() turn_off() undo() redo()
  alert(category, message) press_fan() say(text)
  register(name?) send(device, command) save() restore(index=-1)
  schedule("timed"|"sensor") section(title)

print() output is part of the transcript.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return script.Run(ctx, &script.Options{
			ConfigPath: configPath,
			ScriptPath: args[0],
			Format:     format,
			Output:     cmd.OutOrStdout(),
		})
	},
}
