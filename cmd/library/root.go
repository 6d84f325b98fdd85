package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore/memengine"
	"github.com/AntonStoeckl/lending-catalog-go/eventstore/oteladapters"
	"github.com/AntonStoeckl/lending-catalog-go/lending/catalog"
	"github.com/AntonStoeckl/lending-catalog-go/lending/history"
	"github.com/AntonStoeckl/lending-catalog-go/lending/shell"
	"github.com/AntonStoeckl/lending-catalog-go/lending/shell/config"
)

type rootOptions struct {
	debug     bool
	jsonLogs  bool
	telemetry bool
	history   bool
}

// session holds everything one command run works with.
type session struct {
	catalog *catalog.Catalog
	history *history.QueryHandler
	out     io.Writer
	close   func(ctx context.Context) error
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "library",
		Short:        "Lending catalog: books, patrons and loans",
		Version:      version,
		SilenceUsage: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every catalog operation, not only rejections")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "log as JSON instead of text")
	cmd.PersistentFlags().BoolVar(&opts.telemetry, "telemetry", false, "export OpenTelemetry spans and metrics to stderr")
	cmd.PersistentFlags().BoolVar(&opts.history, "history", false, "journal all catalog decisions and print the lending history at the end")

	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))

	return cmd
}

func (o *rootOptions) newLogHandler(w io.Writer) slog.Handler {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if o.jsonLogs {
		return slog.NewJSONHandler(w, handlerOpts)
	}

	return slog.NewTextHandler(w, handlerOpts)
}

// openSession wires logging, optional telemetry and the optional journal into a fresh catalog.
func (o *rootOptions) openSession(cmd *cobra.Command) (*session, error) {
	stderr := cmd.ErrOrStderr()
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(o.newLogHandler(stderr))

	var (
		metricsCollector shell.MetricsCollector
		tracingCollector shell.TracingCollector
		closers          []func(ctx context.Context) error
	)

	if o.telemetry {
		providers, err := config.NewStdoutObservabilityProviders(stderr, version)
		if err != nil {
			return nil, fmt.Errorf("setting up telemetry: %w", err)
		}

		metricsCollector = oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(config.ServiceName))
		tracingCollector = oteladapters.NewTracingCollector(providers.TracerProvider.Tracer(config.ServiceName))
		closers = append(closers, providers.Shutdown)
	}

	catalogOpts := []catalog.Option{catalog.WithContextualLogger(logger)}
	historyOpts := []history.Option{history.WithContextualLogging(logger)}
	journalOpts := []memengine.Option{memengine.WithContextualLogger(logger)}

	if metricsCollector != nil {
		catalogOpts = append(catalogOpts, catalog.WithMetrics(metricsCollector))
		historyOpts = append(historyOpts, history.WithMetrics(metricsCollector))
		journalOpts = append(journalOpts, memengine.WithMetrics(metricsCollector))
	}

	if tracingCollector != nil {
		catalogOpts = append(catalogOpts, catalog.WithTracing(tracingCollector))
		historyOpts = append(historyOpts, history.WithTracing(tracingCollector))
	}

	s := &session{out: cmd.OutOrStdout()}

	if o.history {
		journal, err := memengine.NewEventStore(journalOpts...)
		if err != nil {
			return nil, err
		}

		handler, err := history.NewQueryHandler(journal, historyOpts...)
		if err != nil {
			return nil, err
		}

		catalogOpts = append(catalogOpts, catalog.WithJournal(journal))
		s.history = &handler
	}

	s.catalog = catalog.New(catalogOpts...)
	s.close = func(ctx context.Context) error {
		for _, closeFn := range closers {
			if err := closeFn(ctx); err != nil {
				return err
			}
		}

		return nil
	}

	return s, nil
}

func (s *session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *session) printBooks(heading string, books []*catalog.Book) {
	s.printf("\n%s\n", heading)

	if len(books) == 0 {
		s.printf("  (none)\n")
		return
	}

	for _, book := range books {
		s.printf("  %s\n", book)
	}
}

// printHistory prints the lending history if the session journals its decisions.
func (s *session) printHistory(ctx context.Context) error {
	if s.history == nil {
		return nil
	}

	result, err := s.history.Handle(ctx, history.BuildQuery("", ""))
	if err != nil {
		return err
	}

	s.printf("\nLending history (%d open, %d finished):\n", result.OpenCount, result.FinishedCount)
	for _, lending := range result.Lendings {
		returned := "still on loan"
		if lending.Returned {
			returned = "returned " + lending.ReturnedAt.Format("15:04:05.000")
		}

		s.printf("  %s -> %s, lent %s, %s\n", lending.ISBN, lending.PatronID, lending.LentAt.Format("15:04:05.000"), returned)
	}

	return nil
}
