// Package cli provides the command-line interface for spantext.
//
// The cli package implements all spantext commands:
//   - demo: Run the built-in instrumented workload once and print its spans
//   - serve: Expose the workload over HTTP so spans are produced per request
//   - version: Show spantext version
//
// Both demo and serve build the same pipeline: a tracer provider whose
// resource carries the configured service identity, wired to the spantext
// exporter in either simple (synchronous) or batched mode. Span text goes to
// stdout by default; diagnostic logs always go to stderr so the two streams
// never interleave.
//
// Configuration comes from --config (JSON or YAML) with per-command flag
// overrides:
//   - --service-name: Override the service.name resource attribute
//   - --mode: simple or batched export
//   - --output: stdout, stderr, or a file path
//   - --filter: expression selecting which spans to render
//
// Usage:
//
//	spantext demo
//	spantext demo --mode batched --output spans.txt
//	spantext demo --filter 'status == "Error"'
//	spantext serve --addr :9090
//	spantext serve --config spantext.yaml
package cli
