package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldNames(t *testing.T) {
	t.Run("every field has a distinct wire key", func(t *testing.T) {
		seen := map[string]bool{}
		for _, name := range FieldNames() {
			key := name.String()
			require.NotEmpty(t, key)
			assert.False(t, seen[key], "duplicate key %s", key)
			seen[key] = true

			parsed, ok := ParseFieldName(key)
			require.True(t, ok)
			assert.Equal(t, name, parsed)
		}
		assert.Len(t, seen, 20)
	})

	t.Run("unknown keys do not parse", func(t *testing.T) {
		_, ok := ParseFieldName("passportNumber")
		assert.False(t, ok)
	})
}

func TestNewField(t *testing.T) {
	t.Run("rejects confidence out of range", func(t *testing.T) {
		_, err := NewField("X", ProvenanceOCR, 1.2)
		assert.ErrorIs(t, err, ErrInvalidConfidence)
		_, err = NewField("X", ProvenanceOCR, -0.1)
		assert.ErrorIs(t, err, ErrInvalidConfidence)
	})

	t.Run("rejects unknown provenance", func(t *testing.T) {
		_, err := NewField("X", Provenance("camera"), 0.5)
		assert.ErrorIs(t, err, ErrInvalidProvenance)
	})

	t.Run("accepts bounds", func(t *testing.T) {
		f, err := NewField("X", ProvenanceMRZ, 1)
		require.NoError(t, err)
		assert.Nil(t, f.Valid)
		assert.True(t, f.IsValid(), "unvalidated fields count as valid")
	})
}

func TestRecordEdits(t *testing.T) {
	extracted, err := NewField("12345678", ProvenanceMRZ, 0.95)
	require.NoError(t, err)
	original := BlankRecord().With(FieldSupportNumber, extracted)

	t.Run("edit resets provenance and keeps the original untouched", func(t *testing.T) {
		edited := original.WithValue(FieldSupportNumber, "87654321")

		assert.Equal(t, "87654321", edited.Value(FieldSupportNumber))
		assert.Equal(t, ProvenanceManual, edited.Get(FieldSupportNumber).Provenance)
		assert.Equal(t, 0.95, edited.Get(FieldSupportNumber).Confidence)

		assert.Equal(t, "12345678", original.Value(FieldSupportNumber))
		assert.Equal(t, ProvenanceMRZ, original.Get(FieldSupportNumber).Provenance)
	})

	t.Run("apply verdict sets every flag", func(t *testing.T) {
		v := AllValid()
		v[FieldSupportNumber] = false
		v[FieldSupportNumberCheck] = false

		merged := original.ApplyVerdict(v)
		for _, name := range FieldNames() {
			require.NotNil(t, merged.Get(name).Valid, name.String())
		}
		assert.False(t, merged.Get(FieldSupportNumber).IsValid())
		assert.False(t, merged.Get(FieldSupportNumberCheck).IsValid())
		assert.True(t, merged.Get(FieldSurnames).IsValid())
		assert.Nil(t, original.Get(FieldSupportNumber).Valid)
	})

	t.Run("review lists invalid and low confidence machine fields", func(t *testing.T) {
		lowConfidence, err := NewField("C/ MAYOR 1", ProvenanceOCR, 0.75)
		require.NoError(t, err)
		v := AllValid()
		v[FieldBirthDate] = false

		r := original.With(FieldAddress, lowConfidence).ApplyVerdict(v)
		assert.ElementsMatch(t, []FieldName{FieldBirthDate, FieldAddress}, r.NeedsReview())
	})
}

func TestRecordJSON(t *testing.T) {
	t.Run("missing keys decode to blank fields", func(t *testing.T) {
		var r Record
		err := json.Unmarshal([]byte(`{"numeroSoporte":{"value":"12345678","provenance":"mrz","confidence":0.95}}`), &r)
		require.NoError(t, err)

		assert.Equal(t, "12345678", r.Value(FieldSupportNumber))
		assert.Equal(t, ProvenanceMRZ, r.Get(FieldSupportNumber).Provenance)
		assert.Equal(t, "", r.Value(FieldSurnames))
		assert.Equal(t, ProvenanceManual, r.Get(FieldSurnames).Provenance)
	})

	t.Run("encodes every key", func(t *testing.T) {
		raw, err := json.Marshal(BlankRecord())
		require.NoError(t, err)
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &m))
		assert.Len(t, m, 20)
		assert.Contains(t, m, "digitoControlFechaNac")
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		var r Record
		err := json.Unmarshal([]byte(`{"foo":{"value":"x"}}`), &r)
		assert.Error(t, err)
	})

	t.Run("rejects invalid metadata", func(t *testing.T) {
		var r Record
		err := json.Unmarshal([]byte(`{"sexo":{"value":"F","provenance":"ocr","confidence":3}}`), &r)
		assert.ErrorIs(t, err, ErrInvalidConfidence)
	})

	t.Run("verdict encodes every key", func(t *testing.T) {
		v := AllValid()
		v[FieldExpiryDate] = false
		raw, err := json.Marshal(v)
		require.NoError(t, err)

		var decoded Verdict
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, v, decoded)
		assert.Equal(t, []FieldName{FieldExpiryDate}, decoded.Invalid())
	})
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"900514", "1990-05-14"},
		{"510101", "1951-01-01"},
		{"500101", "2050-01-01"},
		{"301231", "2030-12-31"},
		{"1990-05-14", "1990-05-14"},
		{"", ""},
		{"90051", "90051"},
		{"AB0514", "AB0514"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDate(tc.in))
		})
	}
}
