package document

import (
	"encoding/json"
	"fmt"
)

// Verdict holds one validity flag per record field.
type Verdict [fieldCount]bool

// AllValid is the starting verdict: fields without a checksum are assumed valid.
func AllValid() Verdict {
	var v Verdict
	for i := range v {
		v[i] = true
	}
	return v
}

// Get returns the flag stored under name.
func (v Verdict) Get(name FieldName) bool {
	return v[name]
}

// Invalid lists the fields whose flag is false.
func (v Verdict) Invalid() []FieldName {
	var out []FieldName
	for _, name := range FieldNames() {
		if !v[name] {
			out = append(out, name)
		}
	}
	return out
}

// MarshalJSON encodes the verdict as an object keyed by wire key.
func (v Verdict) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, fieldCount)
	for _, name := range FieldNames() {
		m[name.String()] = v[name]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by wire key; absent keys stay valid.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := AllValid()
	for key, ok := range m {
		name, found := ParseFieldName(key)
		if !found {
			return fmt.Errorf("unknown document field %q", key)
		}
		out[name] = ok
	}
	*v = out
	return nil
}
