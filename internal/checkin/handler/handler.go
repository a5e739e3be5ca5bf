package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"checkin/internal/checkin"
	"checkin/internal/document"
	"checkin/internal/extraction"
	"checkin/internal/platform/metrics"
	"checkin/internal/platform/middleware"
	dErrors "checkin/pkg/domain-errors"
	"checkin/pkg/platform/httputil"
)

// Service defines the check-in operations exposed over HTTP.
type Service interface {
	Scan(ctx context.Context, img extraction.Image) checkin.ScanResult
	Validate(ctx context.Context, record document.Record) (document.Record, document.Verdict)
	Edit(record document.Record, field, value string) (document.Record, error)
	Submit(ctx context.Context, record document.Record, consent bool) (checkin.SubmissionResult, error)
}

// DefaultTimeout bounds a request when none is configured. Scans wait on the
// extraction engine and need more than the usual budget.
const DefaultTimeout = 90 * time.Second

const (
	// ScanBodyLimit fits a base64 image of extraction.MaxImageBytes plus the
	// JSON envelope and a data URL prefix.
	ScanBodyLimit = extraction.MaxImageBytes/3*4 + 64<<10
	// RecordBodyLimit bounds validate, edit and submit bodies.
	RecordBodyLimit = 64 << 10
)

// Handler handles the check-in endpoints.
type Handler struct {
	logger  *slog.Logger
	checkin Service
	metrics *metrics.Metrics
	timeout time.Duration
}

// New creates a new check-in Handler.
func New(svc Service, logger *slog.Logger, metrics *metrics.Metrics, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{
		logger:  logger,
		checkin: svc,
		metrics: metrics,
		timeout: timeout,
	}
}

// Register registers the check-in routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	checkinRouter := chi.NewRouter()
	checkinRouter.Use(middleware.Recovery(h.logger))
	checkinRouter.Use(middleware.RequestID)
	checkinRouter.Use(middleware.RequestTime)
	checkinRouter.Use(middleware.Logger(h.logger))
	checkinRouter.Use(middleware.Timeout(h.timeout))
	checkinRouter.Use(middleware.ContentTypeJSON)
	checkinRouter.Use(middleware.LatencyMiddleware(h.metrics))
	checkinRouter.Post("/scan", h.handleScan)
	checkinRouter.Post("/validate", h.handleValidate)
	checkinRouter.Post("/edit", h.handleEdit)
	checkinRouter.Post("/submit", h.handleSubmit)

	r.Mount("/v1/checkin", checkinRouter)
}

func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req ScanRequest
	if err := httputil.DecodeJSON(w, r, &req, ScanBodyLimit); err != nil {
		h.logger.WarnContext(ctx, "invalid scan request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	img, err := extraction.DecodeImage(req.ImageB64, req.MIMEType)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid scan image",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, imageError(err))
		return
	}

	result := h.checkin.Scan(ctx, img)
	httputil.WriteJSON(w, http.StatusOK, toScanResponse(result))
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateRequest
	if err := h.decodeRecordRequest(w, r, &req, &req.Record); err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, verdict := h.checkin.Validate(ctx, *req.Record)
	httputil.WriteJSON(w, http.StatusOK, ValidateResponse{Record: record, Verdict: verdict})
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EditRequest
	if err := h.decodeRecordRequest(w, r, &req, &req.Record); err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.checkin.Edit(*req.Record, req.Field, req.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid edit request",
			"request_id", middleware.GetRequestID(ctx),
			"field", req.Field,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EditResponse{Record: record})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req SubmitRequest
	if err := h.decodeRecordRequest(w, r, &req, &req.Record); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.checkin.Submit(ctx, *req.Record, req.Consent)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeBadGateway) {
			httputil.WriteJSON(w, http.StatusBadGateway, result)
			return
		}
		if dErrors.HasCode(err, dErrors.CodeMissingConsent) {
			h.logger.WarnContext(ctx, "submission without consent",
				"request_id", requestID,
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to submit guest data",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to submit guest data"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// decodeRecordRequest decodes dst and requires the record it carries.
func (h *Handler) decodeRecordRequest(w http.ResponseWriter, r *http.Request, dst any, record **document.Record) error {
	ctx := r.Context()
	if err := httputil.DecodeJSON(w, r, dst, RecordBodyLimit); err != nil {
		h.logger.WarnContext(ctx, "invalid check-in request",
			"request_id", middleware.GetRequestID(ctx),
			"path", r.URL.Path,
			"error", err.Error(),
		)
		return err
	}
	if *record == nil {
		return dErrors.New(dErrors.CodeBadRequest, "record is required")
	}
	return nil
}

func imageError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrImageTooLarge):
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "image is larger than 10 MiB")
	case errors.Is(err, extraction.ErrEmptyImage):
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "image_b64 is required")
	default:
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "image_b64 is not valid base64")
	}
}
