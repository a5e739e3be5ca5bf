package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"checkin/internal/checkin/metrics"
	"checkin/internal/document"
	"checkin/pkg/platform/circuit"
	"checkin/pkg/platform/sentinel"
	"checkin/pkg/requestcontext"
)

// Extractor reads the raw fields of a document photo.
type Extractor interface {
	Extract(ctx context.Context, img Image) (Raw, error)
}

// Cache keeps extracted records for a short time so a retried upload of the
// same photo does not call the engine again. Get returns sentinel.ErrNotFound
// on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (document.Record, error)
	Set(ctx context.Context, key string, record document.Record, ttl time.Duration) error
}

// Service turns document photos into tagged records.
type Service struct {
	extractor Extractor
	cache     Cache
	cacheTTL  time.Duration
	timeout   time.Duration
	breaker   *circuit.Breaker
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

// WithCache enables result caching. A zero ttl disables it.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *Service) {
		if cache != nil && ttl > 0 {
			s.cache = cache
			s.cacheTTL = ttl
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithBreaker fails fast while the engine keeps failing.
func WithBreaker(b *circuit.Breaker) Option {
	return func(s *Service) {
		s.breaker = b
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(extractor Extractor, opts ...Option) *Service {
	s := &Service{extractor: extractor}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Extract returns the record read from img. Cache failures are logged and
// bypassed; engine failures are returned.
func (s *Service) Extract(ctx context.Context, img Image) (document.Record, error) {
	key := img.Hash()

	if record, ok := s.lookup(ctx, key); ok {
		return record, nil
	}

	if s.breaker != nil && !s.breaker.Allow() {
		s.logger.WarnContext(ctx, "extraction circuit open, skipping engine",
			"request_id", requestcontext.RequestID(ctx),
			"scan_id", requestcontext.ScanID(ctx),
			"breaker", s.breaker.Name(),
		)
		return document.Record{}, fmt.Errorf("extract document: %w", sentinel.ErrUnavailable)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.extractor.Extract(callCtx, img)
	s.metrics.ObserveExtractionLatency(time.Since(start))
	s.recordOutcome(ctx, err)
	if err != nil {
		return document.Record{}, fmt.Errorf("extract document: %w", err)
	}

	record := ToRecord(raw)
	s.store(ctx, key, record)
	return record, nil
}

// recordOutcome feeds the breaker. Failures caused by the caller going away
// say nothing about the engine and are not counted.
func (s *Service) recordOutcome(ctx context.Context, err error) {
	if s.breaker == nil {
		return
	}
	if err == nil {
		s.breaker.RecordSuccess()
		return
	}
	if ctx.Err() != nil {
		s.breaker.Release()
		return
	}
	if s.breaker.RecordFailure() {
		s.logger.ErrorContext(ctx, "extraction circuit opened",
			"request_id", requestcontext.RequestID(ctx),
			"scan_id", requestcontext.ScanID(ctx),
			"breaker", s.breaker.Name(),
			"error", err,
		)
	}
}

func (s *Service) lookup(ctx context.Context, key string) (document.Record, bool) {
	if s.cache == nil {
		return document.Record{}, false
	}
	record, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.metrics.IncrementCacheLookup(metrics.CacheHit)
		s.logger.DebugContext(ctx, "extraction cache hit",
			"request_id", requestcontext.RequestID(ctx),
			"scan_id", requestcontext.ScanID(ctx),
			"image_hash", key,
		)
		return record, true
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncrementCacheLookup(metrics.CacheMiss)
	default:
		s.metrics.IncrementCacheLookup(metrics.CacheError)
		s.logger.WarnContext(ctx, "extraction cache lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"scan_id", requestcontext.ScanID(ctx),
			"image_hash", key,
			"error", err,
		)
	}
	return document.Record{}, false
}

func (s *Service) store(ctx context.Context, key string, record document.Record) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, record, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "extraction cache store failed",
			"request_id", requestcontext.RequestID(ctx),
			"scan_id", requestcontext.ScanID(ctx),
			"image_hash", key,
			"error", err,
		)
	}
}
