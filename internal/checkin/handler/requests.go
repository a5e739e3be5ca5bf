package handler

import (
	"checkin/internal/checkin"
	"checkin/internal/document"
)

// ScanRequest carries a document photo, optionally as a data URL.
type ScanRequest struct {
	ImageB64 string `json:"image_b64"`
	MIMEType string `json:"mime_type,omitempty"`
}

type ValidateRequest struct {
	Record *document.Record `json:"record"`
}

type EditRequest struct {
	Record *document.Record `json:"record"`
	Field  string           `json:"field"`
	Value  string           `json:"value"`
}

// SubmitRequest carries the reviewed record and the guest's data-protection
// consent.
type SubmitRequest struct {
	Record  *document.Record `json:"record"`
	Consent bool             `json:"consent"`
}

// ScanResponse returns the extracted record, its verdict and the fields the
// guest should double-check.
type ScanResponse struct {
	ScanID           string           `json:"scan_id"`
	Record           document.Record  `json:"record"`
	Verdict          document.Verdict `json:"verdict"`
	ExtractionFailed bool             `json:"extraction_failed"`
	Message          string           `json:"message,omitempty"`
	Review           []string         `json:"review"`
}

type ValidateResponse struct {
	Record  document.Record  `json:"record"`
	Verdict document.Verdict `json:"verdict"`
}

type EditResponse struct {
	Record document.Record `json:"record"`
}

func toScanResponse(r checkin.ScanResult) ScanResponse {
	review := make([]string, 0)
	for _, name := range r.Review() {
		review = append(review, name.String())
	}
	return ScanResponse{
		ScanID:           r.ScanID,
		Record:           r.Record,
		Verdict:          r.Verdict,
		ExtractionFailed: r.ExtractionFailed,
		Message:          r.Message,
		Review:           review,
	}
}
