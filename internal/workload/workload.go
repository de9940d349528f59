package workload

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/getmockd/spantext/pkg/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrQueryFlagged is returned when a request carries the error flag.
var ErrQueryFlagged = errors.New("encountered the error flag in the query")

// DefaultStepDelay simulates the cost of one expensive step.
const DefaultStepDelay = 25 * time.Millisecond

// Worker runs the demo operations, recording every step as a span through
// the injected tracer. There is no global tracer state; callers construct a
// Worker with whatever tracer they want the spans to flow through.
type Worker struct {
	tracer    trace.Tracer
	log       *slog.Logger
	stepDelay time.Duration
}

// Option configures a Worker.
type Option func(*Worker)

// WithLogger sets the logger for workload progress. Defaults to no logging.
func WithLogger(log *slog.Logger) Option {
	return func(w *Worker) {
		w.log = log
	}
}

// WithStepDelay sets how long each expensive step sleeps.
func WithStepDelay(d time.Duration) Option {
	return func(w *Worker) {
		w.stepDelay = d
	}
}

// New creates a Worker tracing through the given tracer.
func New(tracer trace.Tracer, opts ...Option) *Worker {
	w := &Worker{
		tracer:    tracer,
		log:       logging.Nop(),
		stepDelay: DefaultStepDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FailableWork runs two expensive steps and then consults the fail flag.
// On failure the error is recorded on the operation's span and returned
// unchanged to the caller; the tracing layer never swallows or rewrites it.
func (w *Worker) FailableWork(ctx context.Context, fail bool) (string, error) {
	ctx, span := w.tracer.Start(ctx, "failable_work",
		trace.WithAttributes(attribute.Bool("fail", fail)))
	defer span.End()

	w.step(ctx, "expensive_step_1")
	w.step(ctx, "expensive_step_2")

	if fail {
		span.RecordError(ErrQueryFlagged)
		span.SetStatus(codes.Error, ErrQueryFlagged.Error())
		return "", ErrQueryFlagged
	}
	span.SetStatus(codes.Ok, "")
	return "success", nil
}

// DoubleFailableWork behaves like FailableWork but also emits a span event
// before consulting the fail flag, exercising event rendering downstream.
func (w *Worker) DoubleFailableWork(ctx context.Context, fail bool) (string, error) {
	ctx, span := w.tracer.Start(ctx, "double_failable_work",
		trace.WithAttributes(attribute.Bool("fail", fail)))
	defer span.End()

	w.step(ctx, "expensive_step_1")
	w.step(ctx, "expensive_step_2")

	span.AddEvent("hello", trace.WithAttributes(attribute.String("error", "test")))

	if fail {
		span.RecordError(ErrQueryFlagged)
		span.SetStatus(codes.Error, ErrQueryFlagged.Error())
		return "", ErrQueryFlagged
	}
	span.SetStatus(codes.Ok, "")
	return "success", nil
}

// Run executes the demo sequence under one root span: a unit of work that
// succeeds, one that fails on request, and one whose failure is deliberately
// discarded after being recorded on its span.
func (w *Worker) Run(ctx context.Context) error {
	ctx, root := w.tracer.Start(ctx, "app_start", trace.WithAttributes(
		attribute.Int("work_units", 2),
		attribute.String("run.id", uuid.New().String()),
	))
	defer root.End()

	status, err := w.FailableWork(ctx, false)
	if err != nil {
		w.log.Error("work failed unexpectedly", "error", err)
		return err
	}
	w.log.Debug("work finished", "status", status)

	if _, err := w.FailableWork(ctx, true); err != nil {
		w.log.Debug("work failed as requested", "status", err.Error())
	}

	root.AddEvent("About to exit!")
	w.log.Warn("About to exit!")

	// Recorded on the span, dropped here on purpose.
	_, _ = w.DoubleFailableWork(ctx, true)

	return nil
}

// step opens a child span around one simulated unit of expensive work.
func (w *Worker) step(ctx context.Context, name string) {
	_, span := w.tracer.Start(ctx, name)
	defer span.End()
	time.Sleep(w.stepDelay)
}
