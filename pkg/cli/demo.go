package cli

import (
	"context"
	"time"

	"github.com/getmockd/spantext/internal/workload"
	"github.com/getmockd/spantext/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// demoFlagVals is the package-level instance bound to cobra flags.
var demoFlagVals exportFlags

// demoStepDelay is how long each expensive step sleeps.
var demoStepDelay time.Duration

// demoCmd runs the built-in workload once and prints every span it produces.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demo workload and print its spans",
	Long: `Run a short instrumented workload and print each finished span as text.

The workload opens a root span, runs one unit of work that succeeds and one
that fails on request, then runs a third unit whose failure is recorded on
its span but otherwise discarded. The resulting spans exercise every part of
the text format: Ok and Error statuses, attributes, events, and nesting.`,
	Example: `  # Print demo spans to stdout
  spantext demo

  # Batch spans and write them to a file
  spantext demo --mode batched --output spans.txt

  # Only render spans that failed
  spantext demo --filter 'status == "Error"'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(&demoFlagVals)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoFlagVals.register(demoCmd)
	demoCmd.Flags().DurationVar(&demoStepDelay, "step-delay", workload.DefaultStepDelay, "Sleep per expensive step")
}

// runDemo is the core demo logic called by the cobra command.
func runDemo(flags *exportFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger()
	ctx := context.Background()

	w, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	if closeOutput != nil {
		defer func() {
			if err := closeOutput(); err != nil {
				output.Warn("close output: %v", err)
			}
		}()
	}

	tp, err := newTracerProvider(ctx, cfg, w)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownProvider(tp); err != nil {
			output.Warn("tracer shutdown error: %v", err)
		}
	}()

	worker := workload.New(
		tp.Tracer("spantext/workload"),
		workload.WithLogger(log),
		workload.WithStepDelay(demoStepDelay),
	)
	return worker.Run(ctx)
}
