// Package document contains the pure domain model of an extracted identity document.
//
// # Record
//
// A Record is the fixed set of fields read from a Spanish DNI (or any TD1 card
// with the same layout): the MRZ fields with their check digits plus the
// free-text address fields printed on the card. The Record type is a fixed-size
// array indexed by FieldName, so every field is always present; an unread field
// is an empty string, never a missing key.
//
// # Field lifecycle
//
//   - extraction produces fields tagged ProvenanceMRZ or ProvenanceOCR with a
//     model confidence in [0, 1]
//   - the MRZ validator produces a Verdict which ApplyVerdict merges into the
//     per-field Valid flags
//   - a human edit (WithValue) replaces the value and retags it ProvenanceManual
//
// Validity is advisory. Nothing in this package blocks an edit or a submission
// because a field failed its check digit.
//
// # Domain Purity
//
//	✓ No I/O
//	✓ No context.Context in function signatures
//	✓ No time.Now() calls
//
// Every operation takes a Record by value and returns a new one.
package document
