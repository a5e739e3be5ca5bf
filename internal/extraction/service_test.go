package extraction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"checkin/internal/checkin/metrics"
	"checkin/internal/document"
	"checkin/internal/extraction"
	"checkin/internal/extraction/mocks"
	"checkin/pkg/platform/circuit"
	"checkin/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Extractor,Cache

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	extractor *mocks.MockExtractor
	cache     *mocks.MockCache
	metrics   *metrics.Metrics
	service   *extraction.Service
	img       extraction.Image
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

const ttl = 5 * time.Minute

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.extractor = mocks.NewMockExtractor(ctrl)
	s.cache = mocks.NewMockCache(ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = extraction.New(s.extractor,
		extraction.WithCache(s.cache, ttl),
		extraction.WithTimeout(time.Second),
		extraction.WithMetrics(s.metrics),
	)
	s.img = extraction.Image{Data: []byte("photo"), MIMEType: "image/jpeg"}
}

func (s *ServiceSuite) cacheLookups(result string) float64 {
	return testutil.ToFloat64(s.metrics.CacheLookups.WithLabelValues(result))
}

func (s *ServiceSuite) TestMissCallsExtractorAndStores() {
	raw := extraction.Raw{"numeroSoporte": "BAA000589", "fechaNacimiento": "800101"}
	want := extraction.ToRecord(raw)

	s.cache.EXPECT().Get(gomock.Any(), s.img.Hash()).Return(document.Record{}, sentinel.ErrNotFound)
	s.extractor.EXPECT().Extract(gomock.Any(), s.img).DoAndReturn(
		func(ctx context.Context, _ extraction.Image) (extraction.Raw, error) {
			_, ok := ctx.Deadline()
			s.True(ok, "extractor call is bounded")
			return raw, nil
		})
	s.cache.EXPECT().Set(gomock.Any(), s.img.Hash(), want, ttl).Return(nil)

	got, err := s.service.Extract(s.ctx, s.img)
	s.Require().NoError(err)
	s.Equal(want, got)
	s.Equal("1980-01-01", got.Value(document.FieldBirthDate))
	s.InDelta(1, s.cacheLookups(metrics.CacheMiss), 0)
	s.Equal(1, testutil.CollectAndCount(s.metrics.ExtractionLatency))
}

func (s *ServiceSuite) TestHitSkipsExtractor() {
	cached := extraction.ToRecord(extraction.Raw{"nombres": "CARMEN"})
	s.cache.EXPECT().Get(gomock.Any(), s.img.Hash()).Return(cached, nil)

	got, err := s.service.Extract(s.ctx, s.img)
	s.Require().NoError(err)
	s.Equal(cached, got)
	s.InDelta(1, s.cacheLookups(metrics.CacheHit), 0)
}

func (s *ServiceSuite) TestCacheFailuresAreBypassed() {
	raw := extraction.Raw{"nombres": "CARMEN"}
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(document.Record{}, errors.New("connection refused"))
	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(raw, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), ttl).Return(errors.New("connection refused"))

	got, err := s.service.Extract(s.ctx, s.img)
	s.Require().NoError(err)
	s.Equal("CARMEN", got.Value(document.FieldGivenNames))
	s.InDelta(1, s.cacheLookups(metrics.CacheError), 0)
}

func (s *ServiceSuite) TestExtractorErrorIsReturned() {
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(document.Record{}, sentinel.ErrNotFound)
	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(nil, sentinel.ErrUnavailable)

	_, err := s.service.Extract(s.ctx, s.img)
	s.ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *ServiceSuite) TestWithoutCache() {
	svc := extraction.New(s.extractor, extraction.WithCache(nil, ttl))
	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(extraction.Raw{}, nil)

	got, err := svc.Extract(s.ctx, s.img)
	s.Require().NoError(err)
	s.Equal(extraction.DefaultCountry, got.Value(document.FieldCountry))
}

func (s *ServiceSuite) TestZeroTTLDisablesCache() {
	svc := extraction.New(s.extractor, extraction.WithCache(s.cache, 0))
	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(extraction.Raw{}, nil)

	_, err := svc.Extract(s.ctx, s.img)
	s.NoError(err)
}

func (s *ServiceSuite) TestOpenBreakerSkipsEngine() {
	breaker := circuit.New("gemini", circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour))
	svc := extraction.New(s.extractor, extraction.WithBreaker(breaker))

	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(nil, sentinel.ErrUnavailable).Times(2)

	for range 2 {
		_, err := svc.Extract(s.ctx, s.img)
		s.Require().Error(err)
	}
	s.True(breaker.IsOpen())

	_, err := svc.Extract(s.ctx, s.img)
	s.ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *ServiceSuite) TestAbandonedTrialIsReleased() {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	breaker := circuit.New("gemini",
		circuit.WithFailureThreshold(1),
		circuit.WithCooldown(time.Minute),
		circuit.WithClock(func() time.Time { return now }),
	)
	svc := extraction.New(s.extractor, extraction.WithBreaker(breaker))

	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(nil, sentinel.ErrUnavailable)
	_, err := svc.Extract(s.ctx, s.img)
	s.Require().Error(err)
	s.Require().True(breaker.IsOpen())

	now = now.Add(time.Minute)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(nil, context.Canceled)
	_, err = svc.Extract(ctx, s.img)
	s.ErrorIs(err, context.Canceled)

	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(extraction.Raw{"nombres": "CARMEN"}, nil)
	record, err := svc.Extract(s.ctx, s.img)
	s.Require().NoError(err)
	s.Equal("CARMEN", record.Value(document.FieldGivenNames))
	s.False(breaker.IsOpen())
}

func (s *ServiceSuite) TestCallerCancellationDoesNotTripBreaker() {
	breaker := circuit.New("gemini", circuit.WithFailureThreshold(1))
	svc := extraction.New(s.extractor, extraction.WithBreaker(breaker))
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.extractor.EXPECT().Extract(gomock.Any(), s.img).Return(nil, context.Canceled)

	_, err := svc.Extract(ctx, s.img)
	s.ErrorIs(err, context.Canceled)
	s.False(breaker.IsOpen())
}
