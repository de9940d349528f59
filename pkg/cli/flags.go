package cli

import (
	"github.com/getmockd/spantext/pkg/config"
	"github.com/spf13/cobra"
)

// exportFlags are the per-command overrides applied on top of the loaded
// configuration. Empty values leave the configuration untouched.
type exportFlags struct {
	serviceName string
	mode        string
	output      string
	filter      string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.serviceName, "service-name", "", "Override the service.name resource attribute")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Export mode (simple, batched)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Span text destination (stdout, stderr, or a file path)")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Expression selecting which spans to render")
}

func (f *exportFlags) apply(cfg *config.Config) {
	if f.serviceName != "" {
		cfg.ServiceName = f.serviceName
	}
	if f.mode != "" {
		cfg.Mode = config.Mode(f.mode)
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.filter != "" {
		cfg.Filter = f.filter
	}
}
