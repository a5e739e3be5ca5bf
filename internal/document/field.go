package document

import (
	"errors"
	"fmt"
)

// Provenance tags where a field value came from.
type Provenance string

const (
	ProvenanceMRZ    Provenance = "mrz"
	ProvenanceOCR    Provenance = "ocr"
	ProvenanceManual Provenance = "manual"
)

// IsValid reports whether p is one of the known provenance tags.
func (p Provenance) IsValid() bool {
	switch p {
	case ProvenanceMRZ, ProvenanceOCR, ProvenanceManual:
		return true
	}
	return false
}

// ReviewThreshold is the confidence below which an extracted value should be
// double-checked by the guest.
const ReviewThreshold = 0.8

var (
	// ErrInvalidConfidence indicates a confidence outside [0, 1].
	ErrInvalidConfidence = errors.New("invalid confidence: must be between 0.0 and 1.0")
	// ErrInvalidProvenance indicates an unknown provenance tag.
	ErrInvalidProvenance = errors.New("invalid provenance: must be mrz, ocr or manual")
)

// Field is a single extracted value with its provenance and confidence.
// Valid is nil until a validator has looked at the field.
type Field struct {
	Value      string     `json:"value"`
	Provenance Provenance `json:"provenance"`
	Confidence float64    `json:"confidence"`
	Valid      *bool      `json:"valid,omitempty"`
}

// NewField builds a Field, enforcing the provenance and confidence invariants.
func NewField(value string, provenance Provenance, confidence float64) (Field, error) {
	if !provenance.IsValid() {
		return Field{}, fmt.Errorf("%w: %q", ErrInvalidProvenance, provenance)
	}
	if confidence < 0 || confidence > 1 {
		return Field{}, fmt.Errorf("%w: %v", ErrInvalidConfidence, confidence)
	}
	return Field{Value: value, Provenance: provenance, Confidence: confidence}, nil
}

// ManualField is a field typed by a human: full confidence, assumed valid.
func ManualField(value string) Field {
	return Field{
		Value:      value,
		Provenance: ProvenanceManual,
		Confidence: 1.0,
		Valid:      boolPtr(true),
	}
}

// IsValid treats an unvalidated field as valid; only an explicit false fails.
func (f Field) IsValid() bool {
	return f.Valid == nil || *f.Valid
}

// NeedsReview reports whether a machine-read field is invalid or low confidence.
func (f Field) NeedsReview() bool {
	if f.Provenance == ProvenanceManual {
		return !f.IsValid()
	}
	return !f.IsValid() || f.Confidence < ReviewThreshold
}

func (f Field) withValid(valid bool) Field {
	f.Valid = boolPtr(valid)
	return f
}

func boolPtr(b bool) *bool { return &b }
