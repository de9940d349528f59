package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/getmockd/spantext/internal/workload"
	"github.com/getmockd/spantext/pkg/cli/internal/output"
	"github.com/oklog/run"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// serveFlags holds all parsed command-line flags for the serve command.
type serveFlags struct {
	addr   string
	export exportFlags
}

// serveFlagVals is the package-level instance bound to cobra flags.
var serveFlagVals serveFlags

// serveCmd exposes the workload over HTTP so spans can be produced on demand.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the demo workload over HTTP and print its spans",
	Long: `Start an HTTP server whose handlers run the instrumented workload.
Every request produces a server span plus the workload's own spans, all
rendered as text on the configured output.

Endpoints:

  GET /work              run one unit of work that succeeds
  GET /work?fail=true    run one unit of work that fails
  GET /work?double=true  run the variant that emits an extra event
  GET /healthz           liveness probe, never traced`,
	Example: `  # Serve on the default address
  spantext serve

  # Batch spans and keep stdout clean
  spantext serve --addr :9090 --mode batched --output spans.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(&serveFlagVals)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveFlagVals.addr, "addr", ":8080", "HTTP listen address")
	serveFlagVals.export.register(serveCmd)
}

// runServe is the core serve logic called by the cobra command.
func runServe(flags *serveFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags.export.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger()
	ctx := context.Background()

	w, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	if closeOutput != nil {
		defer func() {
			if err := closeOutput(); err != nil {
				output.Warn("close output: %v", err)
			}
		}()
	}

	tp, err := newTracerProvider(ctx, cfg, w)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownProvider(tp); err != nil {
			output.Warn("tracer shutdown error: %v", err)
		}
	}()

	worker := workload.New(
		tp.Tracer("spantext/workload"),
		workload.WithLogger(log),
	)

	server := &http.Server{
		Addr:              flags.addr,
		Handler:           newServeHandler(worker, tp),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var g run.Group
	{
		g.Add(func() error {
			log.Info("http server listening", "addr", flags.addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, func(error) {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				output.Warn("http shutdown error: %v", err)
			}
		})
	}
	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}

	err = g.Run()
	var sig run.SignalError
	if errors.As(err, &sig) {
		log.Info("shutting down", "signal", sig.Signal.String())
		return nil
	}
	return err
}

// newServeHandler builds the HTTP routes, traced through the given provider.
// Health checks are exempt from tracing.
func newServeHandler(worker *workload.Worker, tp trace.TracerProvider) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/work", otelhttp.WithRouteTag("/work", handleWork(worker)))
	mux.HandleFunc("/healthz", handleHealthz)

	return otelhttp.NewHandler(mux, "spantext.serve",
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz"
		}),
	)
}

// workResponse is the JSON body returned by the /work endpoint.
type workResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// handleWork runs one unit of failable work per request. fail=true makes the
// work fail; double=true runs the variant that emits an extra event first.
func handleWork(worker *workload.Worker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fail, _ := strconv.ParseBool(r.URL.Query().Get("fail"))
		double, _ := strconv.ParseBool(r.URL.Query().Get("double"))

		var (
			status string
			err    error
		)
		if double {
			status, err = worker.DoubleFailableWork(r.Context(), fail)
		} else {
			status, err = worker.FailableWork(r.Context(), fail)
		}

		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(workResponse{Status: "error", Error: err.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(workResponse{Status: status})
	}
}

// handleHealthz is the liveness probe.
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
