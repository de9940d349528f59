package config

import (
	"errors"
	"fmt"
)

// Export modes.
const (
	// ModeSimple exports each span synchronously as it ends.
	ModeSimple Mode = "simple"
	// ModeBatched queues spans and exports them from a background flush.
	ModeBatched Mode = "batched"
)

// Mode selects how finished spans reach the exporter.
type Mode string

// Output destinations understood beyond literal file paths.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Common validation errors.
var (
	ErrMissingServiceName  = errors.New("serviceName is required")
	ErrInvalidMode         = errors.New(`mode must be "simple" or "batched"`)
	ErrInvalidBatchTimeout = errors.New("batchTimeout must not be negative")
	ErrInvalidFilter       = errors.New("invalid filter expression")
)

// Config describes one span-to-text pipeline: the service identity stamped
// on the resource, how spans are delivered, where the text goes, and an
// optional filter over which spans are rendered.
type Config struct {
	// ServiceName becomes the service.name resource attribute.
	ServiceName string `json:"serviceName" yaml:"serviceName"`

	// ServiceVersion becomes the service.version resource attribute.
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`

	// Mode selects simple (synchronous) or batched export.
	// Empty means simple.
	Mode Mode `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Output is "stdout", "stderr", or a file path. Empty means stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Filter is an optional expression; spans it rejects are not rendered.
	// See CompileFilter for the variables available to expressions.
	Filter string `json:"filter,omitempty" yaml:"filter,omitempty"`

	// BatchTimeout is the batched-mode flush interval in seconds.
	// Zero keeps the SDK default. Ignored in simple mode.
	BatchTimeout int `json:"batchTimeout,omitempty" yaml:"batchTimeout,omitempty"`

	// Resource holds extra resource attributes beyond the service identity.
	Resource map[string]string `json:"resource,omitempty" yaml:"resource,omitempty"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		ServiceName: "spantext-demo",
		Mode:        ModeSimple,
		Output:      OutputStdout,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return ErrMissingServiceName
	}
	switch c.Mode {
	case "", ModeSimple, ModeBatched:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidMode, c.Mode)
	}
	if c.BatchTimeout < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidBatchTimeout, c.BatchTimeout)
	}
	if c.Filter != "" {
		if _, err := CompileFilter(c.Filter); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
	}
	return nil
}

// Batched reports whether spans should go through a batching processor.
func (c *Config) Batched() bool {
	return c.Mode == ModeBatched
}
