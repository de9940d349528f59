// Package spantext renders finished OpenTelemetry spans as human-readable
// text blocks.
//
// The package provides two pieces: Format, a pure function turning one span
// record and its resource into a deterministic multi-line block, and
// Exporter, a trace.SpanExporter that writes those blocks to an io.Writer
// (stdout by default) with a blank line between spans. The output has no
// machine-readable framing; it is meant for eyeballs, demos, and tests, not
// for ingestion.
//
// A rendered block looks like:
//
//	Span: "expensive_step_1"
//	- Status: Ok
//	- Start: 1700000000
//	- End: 1700000000
//	- Resource:
//	  - service.name: demo
//	- Attributes:
//	  - work_units: 2
//	- Events:
//	  - "hello" {error=test}
//	- Links:
//
// Usage:
//
//	exp := spantext.New()
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithSyncer(exp),
//	    sdktrace.WithResource(res),
//	)
//	defer tp.Shutdown(ctx)
//
//	tracer := tp.Tracer("app")
//	ctx, span := tracer.Start(ctx, "work")
//	// ...
//	span.End()
//
// By default each span renders with the resource captured on its own record,
// so the text always reflects the resource in effect when the span was
// created. WithResource and SetResource install an exporter-level override
// for callers that want one resource applied to everything; the latest set
// value wins for subsequent renders.
//
// Error model: a span whose start or end time precedes the Unix epoch fails
// to render with a *TimeError, is handed to the SDK error handler, and is
// skipped; the rest of the batch still exports. Writer failures abort the
// batch with a *ExportError. Nothing on the export path panics.
package spantext
