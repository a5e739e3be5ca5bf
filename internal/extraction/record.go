package extraction

import (
	"strings"

	"checkin/internal/document"
)

// Raw is the flat object an engine read from the document, keyed by wire key.
type Raw map[string]string

// DefaultCountry fills pais when the engine leaves it blank.
const DefaultCountry = "ESPAÑA"

type source struct {
	provenance document.Provenance
	confidence float64
}

var (
	mrzHigh   = source{document.ProvenanceMRZ, 0.95}
	mrzMedium = source{document.ProvenanceMRZ, 0.9}
)

// sources records where each field is read from on a Spanish DNI and how much
// the reading is trusted.
var sources = map[document.FieldName]source{
	document.FieldDocumentType:       mrzHigh,
	document.FieldIssuerCode:         mrzHigh,
	document.FieldSurnames:           mrzMedium,
	document.FieldGivenNames:         mrzMedium,
	document.FieldDocumentNumber:     {document.ProvenanceOCR, 0.85},
	document.FieldSupportNumber:      mrzHigh,
	document.FieldSupportNumberCheck: mrzHigh,
	document.FieldNationality:        mrzHigh,
	document.FieldBirthDate:          mrzHigh,
	document.FieldBirthDateCheck:     mrzHigh,
	document.FieldSex:                mrzHigh,
	document.FieldExpiryDate:         mrzHigh,
	document.FieldExpiryDateCheck:    mrzHigh,
	document.FieldOptionalData:       mrzMedium,
	document.FieldFinalCheck:         mrzHigh,
	document.FieldAddress:            {document.ProvenanceOCR, 0.75},
	document.FieldLocality:           {document.ProvenanceOCR, 0.75},
	document.FieldProvince:           {document.ProvenanceOCR, 0.75},
	document.FieldCountry:            {document.ProvenanceOCR, 0.9},
	document.FieldBirthPlace:         {document.ProvenanceOCR, 0.7},
}

// ToRecord tags every value with its source, rewrites MRZ dates to ISO form
// and fills the default country. Keys outside the field list are ignored.
func ToRecord(raw Raw) document.Record {
	var record document.Record
	for _, name := range document.FieldNames() {
		value := strings.TrimSpace(raw[name.String()])
		switch name {
		case document.FieldBirthDate, document.FieldExpiryDate:
			value = document.NormalizeDate(value)
		case document.FieldCountry:
			if value == "" {
				value = DefaultCountry
			}
		}
		src := sources[name]
		record[name] = document.Field{
			Value:      value,
			Provenance: src.provenance,
			Confidence: src.confidence,
		}
	}
	return record
}
