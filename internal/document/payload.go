package document

import "time"

// ConsentTimestampKey carries the moment the guest accepted the data policy.
const ConsentTimestampKey = "consentimientoTimestamp"

// payloadFields are the record fields the guest registry keeps, in column order.
// MRZ-only data such as check digits never leaves the desk.
var payloadFields = []FieldName{
	FieldSurnames,
	FieldGivenNames,
	FieldSex,
	FieldNationality,
	FieldBirthDate,
	FieldBirthPlace,
	FieldDocumentNumber,
	FieldExpiryDate,
	FieldAddress,
	FieldLocality,
	FieldProvince,
	FieldCountry,
}

// GuestPayload is the flat set of values sent to the guest registry.
type GuestPayload map[string]string

// NewGuestPayload flattens r and stamps the consent time in RFC 3339 UTC.
func NewGuestPayload(r Record, consentAt time.Time) GuestPayload {
	p := make(GuestPayload, len(payloadFields)+1)
	for _, name := range payloadFields {
		p[name.String()] = r.Value(name)
	}
	p[ConsentTimestampKey] = consentAt.UTC().Format(time.RFC3339)
	return p
}

// PayloadKeys lists the payload keys in column order.
func PayloadKeys() []string {
	keys := make([]string, 0, len(payloadFields)+1)
	for _, name := range payloadFields {
		keys = append(keys, name.String())
	}
	return append(keys, ConsentTimestampKey)
}
