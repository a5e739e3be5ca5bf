package checkin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"checkin/internal/checkin/metrics"
	"checkin/internal/document"
	"checkin/internal/extraction"
	dErrors "checkin/pkg/domain-errors"
	"checkin/pkg/requestcontext"
)

// Extractor reads a record from a document photo.
type Extractor interface {
	Extract(ctx context.Context, img extraction.Image) (document.Record, error)
}

// Validator checks the MRZ check digits of a record.
type Validator interface {
	Validate(record document.Record) document.Verdict
}

// Submitter delivers the guest payload to the registry.
type Submitter interface {
	Submit(ctx context.Context, payload document.GuestPayload) error
}

// Service orchestrates the check-in desk: scan, review, edit and submit.
// Validation is advisory throughout; no verdict blocks an edit or a submission.
type Service struct {
	extractor Extractor
	validator Validator
	submitter Submitter
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

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
func New(extractor Extractor, validator Validator, submitter Submitter, opts ...Option) *Service {
	s := &Service{extractor: extractor, validator: validator, submitter: submitter}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Scan reads img and validates the result. An extraction failure is not an
// error: the guest gets a blank manual record to fill in.
func (s *Service) Scan(ctx context.Context, img extraction.Image) ScanResult {
	result := ScanResult{ScanID: uuid.NewString()}
	ctx = requestcontext.WithScanID(ctx, result.ScanID)

	record, err := s.extractor.Extract(ctx, img)
	if err != nil {
		s.logger.WarnContext(ctx, "document extraction failed, falling back to manual entry",
			"request_id", requestcontext.RequestID(ctx),
			"scan_id", result.ScanID,
			"image_hash", img.Hash(),
			"error", err,
		)
		s.metrics.IncrementScan(metrics.ScanFailed)
		record = document.BlankRecord()
		result.ExtractionFailed = true
		result.Message = ExtractionFailedMessage
	} else {
		s.metrics.IncrementScan(metrics.ScanExtracted)
	}

	result.Record, result.Verdict = s.Validate(ctx, record)

	s.logger.InfoContext(ctx, "document scanned",
		"request_id", requestcontext.RequestID(ctx),
		"scan_id", result.ScanID,
		"image_hash", img.Hash(),
		"extraction_failed", result.ExtractionFailed,
		"invalid_fields", len(result.Verdict.Invalid()),
		"review_fields", len(result.Review()),
	)
	return result
}

// Validate runs the check-digit validator and merges the verdict into record.
func (s *Service) Validate(ctx context.Context, record document.Record) (document.Record, document.Verdict) {
	verdict := s.validator.Validate(record)
	for _, name := range verdict.Invalid() {
		s.metrics.IncrementMRZFailure(name.String())
	}
	if invalid := verdict.Invalid(); len(invalid) > 0 {
		s.logger.DebugContext(ctx, "mrz check digits do not match",
			"request_id", requestcontext.RequestID(ctx),
			"fields", fieldKeys(invalid),
		)
	}
	return record.ApplyVerdict(verdict), verdict
}

// Edit applies a guest correction. The field becomes manual and is not
// re-validated.
func (s *Service) Edit(record document.Record, field, value string) (document.Record, error) {
	name, ok := document.ParseFieldName(field)
	if !ok {
		return document.Record{}, dErrors.New(dErrors.CodeInvalidInput, "unknown field: "+field)
	}
	return record.WithValue(name, value), nil
}

// Submit sends record to the guest registry once the guest has consented.
// The returned result is filled in whenever a payload was built, including
// when the registry rejects it.
func (s *Service) Submit(ctx context.Context, record document.Record, consent bool) (SubmissionResult, error) {
	if !consent {
		s.metrics.IncrementSubmission(metrics.SubmissionRejected)
		return SubmissionResult{}, dErrors.New(dErrors.CodeMissingConsent,
			"guest must accept the data protection policy before submitting")
	}

	payload := document.NewGuestPayload(record, requestcontext.Now(ctx))
	if err := s.submitter.Submit(ctx, payload); err != nil {
		s.logger.ErrorContext(ctx, "guest submission failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		s.metrics.IncrementSubmission(metrics.SubmissionFailed)
		return SubmissionResult{Success: false, Payload: payload, Error: err.Error()},
			dErrors.Wrap(err, dErrors.CodeBadGateway, "guest registry did not accept the submission")
	}

	s.logger.InfoContext(ctx, "guest submitted",
		"request_id", requestcontext.RequestID(ctx),
		"consent_at", payload[document.ConsentTimestampKey],
	)
	s.metrics.IncrementSubmission(metrics.SubmissionSucceeded)
	return SubmissionResult{Success: true, Payload: payload}, nil
}

func fieldKeys(names []document.FieldName) []string {
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = n.String()
	}
	return keys
}
