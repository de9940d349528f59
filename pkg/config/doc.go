// Package config provides configuration types and utilities for the spantext
// pipeline.
//
// A Config describes one span-to-text pipeline:
//   - ServiceName/ServiceVersion: the service identity on the trace resource
//   - Mode: simple (export each span synchronously as it ends) or batched
//   - Output: stdout, stderr, or a file path for the rendered text
//   - Filter: an optional expression selecting which spans are rendered
//   - Resource: extra resource attributes beyond the service identity
//
// File-based Configuration:
//
// Configs load from YAML or JSON, detected by extension:
//
//	cfg, err := config.LoadFromFile("spantext.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The YAML form:
//
//	serviceName: demo
//	serviceVersion: 0.1.0
//	mode: simple
//	output: stdout
//	filter: status == "Error"
//	resource:
//	  deployment.environment: dev
//
// Fields absent from the file keep their Default values, and every loaded
// config is validated before being returned.
//
// Span Filters:
//
// Filter expressions use expr-lang over a small span environment (name,
// status, kind, duration_ms, attributes). CompileFilter turns the expression
// into a predicate for spantext.WithFilter; compilation failures surface at
// Validate time, evaluation failures keep the span.
package config
