package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getmockd/spantext/pkg/config"
	"github.com/getmockd/spantext/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	configFile string
	logLevel   string
	logFormat  string
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spantext",
	Short: "spantext renders OpenTelemetry trace spans as plain text",
	Long: `spantext collects OpenTelemetry trace spans and prints each finished span
as a human-readable text block: name, status, timing, resource, attributes,
events, and links.

Span text goes to stdout by default so it can be piped or redirected;
diagnostic logs go to stderr. Configuration can be provided via flags or a
JSON/YAML configuration file.`,
	// No Run function here means 'spantext' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Define persistent flags that apply globally to all spantext commands
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}

// newLogger builds the diagnostic logger from the persistent logging flags.
// Logs always go to stderr so span text on stdout stays clean.
func newLogger() *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(logLevel),
		Format: logging.ParseFormat(logFormat),
	})
}

// loadConfig returns the configuration from --config, or defaults when the
// flag is unset.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configFile, err)
	}
	return cfg, nil
}
