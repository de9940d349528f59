package config

import (
	"fmt"

	"github.com/expr-lang/expr"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// FilterFunc decides whether a finished span is rendered.
type FilterFunc func(sdktrace.ReadOnlySpan) bool

// CompileFilter compiles an expr-lang expression into a span predicate.
//
// Expressions see these variables:
//
//	name        span name (string)
//	status      "Unset", "Ok", or "Error"
//	kind        span kind, e.g. "internal", "server", "client"
//	duration_ms end minus start in whole milliseconds (integer)
//	attributes  span attributes as a string map, values in display form
//
// Examples:
//
//	status == "Error"
//	name startsWith "expensive" and duration_ms > 10
//	attributes["fail"] == "true"
//
// The expression must produce a boolean; anything else fails compilation.
// A filter that fails at evaluation time keeps the span. A broken filter
// must never hide trace output.
func CompileFilter(expression string) (FilterFunc, error) {
	program, err := expr.Compile(expression, expr.Env(filterEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}

	return func(span sdktrace.ReadOnlySpan) bool {
		result, err := expr.Run(program, filterEnv(span))
		if err != nil {
			return true
		}
		keep, ok := result.(bool)
		if !ok {
			return true
		}
		return keep
	}, nil
}

// filterEnv builds the expression environment for one span. A nil span
// yields the zero-valued environment used for compile-time type checking.
func filterEnv(span sdktrace.ReadOnlySpan) map[string]interface{} {
	if span == nil {
		return map[string]interface{}{
			"name":        "",
			"status":      "",
			"kind":        "",
			"duration_ms": int64(0),
			"attributes":  map[string]string{},
		}
	}

	attrs := make(map[string]string, len(span.Attributes()))
	for _, attr := range span.Attributes() {
		attrs[string(attr.Key)] = attr.Value.Emit()
	}

	return map[string]interface{}{
		"name":        span.Name(),
		"status":      span.Status().Code.String(),
		"kind":        span.SpanKind().String(),
		"duration_ms": span.EndTime().Sub(span.StartTime()).Milliseconds(),
		"attributes":  attrs,
	}
}
