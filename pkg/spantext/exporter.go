package spantext

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var blockSeparator = []byte("\n")

var _ sdktrace.SpanExporter = (*Exporter)(nil)

// Exporter writes finished spans to an io.Writer as human-readable text,
// one block per span followed by a blank line. It implements the
// OpenTelemetry SDK's trace.SpanExporter and can back either a simple
// (synchronous) or a batching span processor.
type Exporter struct {
	writerMu sync.Mutex
	writer   io.Writer

	resourceMu sync.RWMutex
	resource   *resource.Resource

	stoppedMu sync.RWMutex
	stopped   bool

	filter func(sdktrace.ReadOnlySpan) bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithWriter sets the output writer for the exporter.
func WithWriter(w io.Writer) Option {
	return func(e *Exporter) {
		e.writer = w
	}
}

// WithResource sets a resource that overrides the one carried by each span
// record. Without it every span renders with its own record's resource.
func WithResource(res *resource.Resource) Option {
	return func(e *Exporter) {
		e.resource = res
	}
}

// WithFilter sets a predicate applied to every span before rendering.
// Spans for which it returns false are not written.
func WithFilter(filter func(sdktrace.ReadOnlySpan) bool) Option {
	return func(e *Exporter) {
		e.filter = filter
	}
}

// New creates a text exporter writing to stdout unless configured otherwise.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportSpans renders each span in batch order and writes the text blocks to
// the configured writer. A span that fails to render is reported to the SDK
// error handler and skipped; the rest of the batch still exports. A write or
// flush failure aborts the batch and is returned as a *ExportError.
//
// After Shutdown the exporter drops all batches and returns nil.
func (e *Exporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.stoppedMu.RLock()
	stopped := e.stopped
	e.stoppedMu.RUnlock()
	if stopped {
		return nil
	}

	if len(spans) == 0 {
		return nil
	}

	e.resourceMu.RLock()
	override := e.resource
	e.resourceMu.RUnlock()

	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	for _, span := range spans {
		if e.filter != nil && !e.filter(span) {
			continue
		}
		res := override
		if res == nil {
			res = span.Resource()
		}
		block, err := Format(span, res)
		if err != nil {
			otel.Handle(err)
			continue
		}
		if _, err := e.writer.Write(block); err != nil {
			return &ExportError{Op: "write", Err: err}
		}
		if _, err := e.writer.Write(blockSeparator); err != nil {
			return &ExportError{Op: "write", Err: err}
		}
	}
	return e.flushLocked()
}

// SetResource replaces the resource override used for subsequent renders.
// Spans already exported are unaffected. Safe to call concurrently with
// ExportSpans; each export call reads the override once, at entry.
func (e *Exporter) SetResource(res *resource.Resource) {
	e.resourceMu.Lock()
	e.resource = res
	e.resourceMu.Unlock()
}

// Shutdown stops the exporter and flushes the writer. Exports after Shutdown
// are silently dropped. Calling Shutdown again is a no-op.
func (e *Exporter) Shutdown(ctx context.Context) error {
	e.stoppedMu.Lock()
	alreadyStopped := e.stopped
	e.stopped = true
	e.stoppedMu.Unlock()
	if alreadyStopped {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e.writerMu.Lock()
	defer e.writerMu.Unlock()
	return e.flushLocked()
}

// MarshalLog is the marshaling function used by the logging system to represent this Exporter.
func (e *Exporter) MarshalLog() interface{} {
	return struct {
		Type     string
		Filtered bool
	}{
		Type:     "spantext",
		Filtered: e.filter != nil,
	}
}

// flusher is implemented by buffered writers, bufio.Writer among them.
type flusher interface {
	Flush() error
}

// flushLocked flushes the writer if it buffers. Callers hold writerMu.
func (e *Exporter) flushLocked() error {
	f, ok := e.writer.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return &ExportError{Op: "flush", Err: err}
	}
	return nil
}
