// Package workload implements the instrumented demo operations behind the
// spantext CLI.
//
// The operations are deliberately mundane: timed "expensive" steps inside
// nested spans, a fail flag that turns into a recorded span error, and a
// root-span run sequence. Their purpose is to produce finished spans covering
// every rendering path of the text exporter: unset, ok and error statuses,
// span attributes, events with and without attributes, and parent/child
// nesting.
//
// Workers take their tracer as a constructor argument. Nothing here touches
// process-global tracer state.
package workload
