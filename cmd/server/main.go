package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"checkin/internal/checkin"
	"checkin/internal/checkin/handler"
	checkinmetrics "checkin/internal/checkin/metrics"
	"checkin/internal/extraction"
	"checkin/internal/extraction/cache"
	"checkin/internal/extraction/gemini"
	"checkin/internal/mrz"
	"checkin/internal/platform/config"
	"checkin/internal/platform/httpserver"
	"checkin/internal/platform/logger"
	"checkin/internal/platform/metrics"
	"checkin/internal/platform/redis"
	"checkin/internal/submission"
	httptransport "checkin/internal/transport/http"
	"checkin/pkg/platform/circuit"
)

const (
	shutdownTimeout = 10 * time.Second
	// requestSlack is added to the extraction timeout for the rest of a scan.
	requestSlack = 10 * time.Second
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpMetrics := metrics.New(prometheus.DefaultRegisterer)
	checkinMetrics := checkinmetrics.New(prometheus.DefaultRegisterer)

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	engine, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	if err != nil {
		return fmt.Errorf("init gemini: %w", err)
	}
	defer engine.Close()

	extractor := extraction.New(engine, extractionOptions(cfg, log, checkinMetrics, redisClient, engine.Name())...)
	submitter := submission.New(cfg.Submission.Endpoint, cfg.Submission.Timeout)
	svc := checkin.New(extractor, mrz.NewValidator(log), submitter,
		checkin.WithLogger(log),
		checkin.WithMetrics(checkinMetrics),
	)
	handlerTimeout := cfg.Extraction.Timeout + requestSlack
	checkinHandler := handler.New(svc, log, httpMetrics, handlerTimeout)

	var health httptransport.HealthChecker
	if redisClient != nil {
		health = redisClient
	}
	router := httptransport.NewRouter(log, health, prometheus.DefaultGatherer, checkinHandler)
	srv := httpserver.New(cfg.Server.Addr, router, handlerTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting checkin server",
			"addr", cfg.Server.Addr,
			"model", cfg.Gemini.Model,
			"cache_enabled", redisClient != nil && cfg.CacheEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down checkin server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func extractionOptions(cfg config.Config, log *slog.Logger, m *checkinmetrics.Metrics, rc *redis.Client, engineName string) []extraction.Option {
	opts := []extraction.Option{
		extraction.WithTimeout(cfg.Extraction.Timeout),
		extraction.WithLogger(log),
		extraction.WithMetrics(m),
		extraction.WithBreaker(circuit.New(engineName)),
	}
	if rc != nil && cfg.CacheEnabled() {
		opts = append(opts, extraction.WithCache(cache.NewRedis(rc.Client), cfg.Extraction.CacheTTL))
	}
	return opts
}
