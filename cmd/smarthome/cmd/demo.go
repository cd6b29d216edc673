package cmd

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/smart-home/internal/service/demo"
)

var (
	// sections restricts the demo to the given sections.
	sections []string

	// demoCmd runs the fixed demonstration.
	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run the pattern demonstration.",
		Long: `Runs every pattern section in a fixed order and prints the transcript.

Available sections: ` + strings.Join(demo.SectionNames(), ", ") + `.
Use --section to run a subset; sections always run in demo order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return demo.Run(ctx, &demo.Options{
				ConfigPath: configPath,
				Format:     format,
				Sections:   sections,
				Output:     cmd.OutOrStdout(),
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	demoCmd.Flags().StringSliceVarP(&sections, "section", "s", nil, "run only these sections")
}
