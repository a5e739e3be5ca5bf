package checkin

import "checkin/internal/document"

// ExtractionFailedMessage is shown to the guest when the photo could not be read.
const ExtractionFailedMessage = "No se pudo procesar la imagen del DNI. Por favor, inténtelo de nuevo o introduzca los datos manualmente."

// ScanResult is the outcome of reading one document photo.
type ScanResult struct {
	ScanID           string
	Record           document.Record
	Verdict          document.Verdict
	ExtractionFailed bool
	Message          string
}

// Review lists the fields the guest should double-check.
func (r ScanResult) Review() []document.FieldName {
	return r.Record.NeedsReview()
}

// SubmissionResult reports what was sent to the guest registry and whether it
// was accepted.
type SubmissionResult struct {
	Success bool                  `json:"success"`
	Payload document.GuestPayload `json:"payload"`
	Error   string                `json:"error,omitempty"`
}
