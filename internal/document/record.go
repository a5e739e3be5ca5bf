package document

import (
	"encoding/json"
	"fmt"
)

// Record is the complete set of fields of one document.
type Record [fieldCount]Field

// BlankRecord returns a record of empty manual fields, the starting point when
// nothing could be extracted and the guest types everything.
func BlankRecord() Record {
	var r Record
	for i := range r {
		r[i] = ManualField("")
	}
	return r
}

// Get returns the field stored under name.
func (r Record) Get(name FieldName) Field {
	return r[name]
}

// Value returns the text of the field stored under name.
func (r Record) Value(name FieldName) string {
	return r[name].Value
}

// With returns a copy of r with name replaced by f.
func (r Record) With(name FieldName, f Field) Record {
	r[name] = f
	return r
}

// WithValue applies a human edit: the value is replaced and the field is
// retagged as manual. Confidence and the last validity flag are kept; the edit
// does not trigger re-validation.
func (r Record) WithValue(name FieldName, value string) Record {
	f := r[name]
	f.Value = value
	f.Provenance = ProvenanceManual
	r[name] = f
	return r
}

// ApplyVerdict copies every verdict entry into the matching field's Valid flag.
func (r Record) ApplyVerdict(v Verdict) Record {
	for _, name := range FieldNames() {
		r[name] = r[name].withValid(v[name])
	}
	return r
}

// NeedsReview lists the fields the guest should double-check.
func (r Record) NeedsReview() []FieldName {
	var out []FieldName
	for _, name := range FieldNames() {
		if r[name].NeedsReview() {
			out = append(out, name)
		}
	}
	return out
}

// MarshalJSON encodes the record as an object keyed by wire key.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]Field, fieldCount)
	for _, name := range FieldNames() {
		m[name.String()] = r[name]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by wire key. Absent keys become blank
// manual fields; unknown keys and out-of-range metadata are rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]Field
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := BlankRecord()
	for key, f := range m {
		name, ok := ParseFieldName(key)
		if !ok {
			return fmt.Errorf("unknown document field %q", key)
		}
		if f.Provenance == "" {
			f.Provenance = ProvenanceManual
		}
		if _, err := NewField(f.Value, f.Provenance, f.Confidence); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		out[name] = f
	}
	*r = out
	return nil
}
