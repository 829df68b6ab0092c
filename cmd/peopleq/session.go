package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/peoplequery/config"
	"github.com/kbukum/peoplequery/errors"
	"github.com/kbukum/peoplequery/logger"
	"github.com/kbukum/peoplequery/observability"
	"github.com/kbukum/peoplequery/record"
	"github.com/kbukum/peoplequery/repository"
	"github.com/kbukum/peoplequery/version"
)

// session holds everything one command invocation needs.
type session struct {
	cfg    *Config
	log    *logger.Logger
	repo   *repository.PersonRepository
	tp     *sdktrace.TracerProvider
	mp     *sdkmetric.MeterProvider
	reader *sdkmetric.ManualReader
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	var loaderOpts []config.LoaderOption
	if opts.ConfigFile != "" {
		if !(&config.RealFileSystem{}).Exists(opts.ConfigFile) {
			return nil, errors.NotFound("config file", opts.ConfigFile)
		}
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.ConfigFile))
	}

	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, loaderOpts...); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") || cfg.Logging.Level == "" {
		cfg.Logging.Level = opts.LogLevel
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), &cfg.Logging, cfg.Name)

	store, err := record.NewStore(cfg.Records())
	if err != nil {
		return nil, fmt.Errorf("building record store: %w", err)
	}

	tracerCfg := observability.DefaultTracerConfig(cfg.Name)
	tracerCfg.Environment = cfg.Environment
	tracerCfg.ServiceVersion = version.Get().Short()
	tp := observability.InitTracer(tracerCfg, observability.NewLogExporter(log))

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewQueryMetrics(mp.Meter(serviceName))
	if err != nil {
		_ = tp.Shutdown(cmd.Context())
		return nil, err
	}

	repo := repository.New(store,
		repository.WithLogger(log),
		repository.WithTracer(tp.Tracer(serviceName)),
		repository.WithMetrics(metrics),
	)

	log.Debug("session started", logger.Fields(
		"records", store.Len(),
		"environment", cfg.Environment,
		"version", version.Get().Short(),
	))

	return &session{cfg: cfg, log: log, repo: repo, tp: tp, mp: mp, reader: reader}, nil
}

// close reports the collected query metrics and shuts the providers down.
func (s *session) close(ctx context.Context) {
	if s.log.DebugEnabled() {
		var rm metricdata.ResourceMetrics
		if err := s.reader.Collect(ctx, &rm); err == nil {
			s.log.Debug("query metrics", counterTotals(rm))
		}
	}
	if err := s.tp.Shutdown(ctx); err != nil {
		s.log.Warn("tracer shutdown failed", logger.ErrorFields("shutdown", err))
	}
	if err := s.mp.Shutdown(ctx); err != nil {
		s.log.Warn("meter shutdown failed", logger.ErrorFields("shutdown", err))
	}
}

func counterTotals(rm metricdata.ResourceMetrics) map[string]interface{} {
	totals := make(map[string]interface{})
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			totals[m.Name] = total
		}
	}
	return totals
}
