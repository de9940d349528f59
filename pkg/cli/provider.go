package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/getmockd/spantext/pkg/config"
	"github.com/getmockd/spantext/pkg/spantext"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// shutdownTimeout is the maximum time to wait for the final span flush.
const shutdownTimeout = 10 * time.Second

// openOutput resolves the configured span text destination. The returned
// close function is non-nil only for file outputs; stdout and stderr are
// never closed.
func openOutput(cfg *config.Config) (io.Writer, func() error, error) {
	switch cfg.Output {
	case "", config.OutputStdout:
		return os.Stdout, nil, nil
	case config.OutputStderr:
		return os.Stderr, nil, nil
	default:
		f, err := os.Create(cfg.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("open output %q: %w", cfg.Output, err)
		}
		return f, f.Close, nil
	}
}

// buildResource describes the traced service: service.name and
// service.version from the config plus any extra resource attributes.
func buildResource(ctx context.Context, cfg *config.Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
	}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}

	keys := make([]string, 0, len(cfg.Resource))
	for k := range cfg.Resource {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, attribute.String(k, cfg.Resource[k]))
	}

	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}
	return res, nil
}

// newTracerProvider wires the text exporter into a tracer provider according
// to the configured mode: simple registers the exporter synchronously, so
// spans print the moment they end; batched runs it behind the SDK batch
// processor.
func newTracerProvider(ctx context.Context, cfg *config.Config, w io.Writer) (*sdktrace.TracerProvider, error) {
	exporterOpts := []spantext.Option{spantext.WithWriter(w)}
	if cfg.Filter != "" {
		filter, err := config.CompileFilter(cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("compile filter: %w", err)
		}
		exporterOpts = append(exporterOpts, spantext.WithFilter(filter))
	}
	exporter := spantext.New(exporterOpts...)

	res, err := buildResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	providerOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if cfg.Batched() {
		var batchOpts []sdktrace.BatchSpanProcessorOption
		if cfg.BatchTimeout > 0 {
			batchOpts = append(batchOpts, sdktrace.WithBatchTimeout(time.Duration(cfg.BatchTimeout)*time.Second))
		}
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exporter, batchOpts...))
	} else {
		providerOpts = append(providerOpts, sdktrace.WithSyncer(exporter))
	}

	return sdktrace.NewTracerProvider(providerOpts...), nil
}

// shutdownProvider flushes remaining spans and stops the provider, bounded
// by shutdownTimeout.
func shutdownProvider(tp *sdktrace.TracerProvider) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return tp.Shutdown(ctx)
}
