// Package mrz validates the check digits of a machine-readable zone.
//
// Check digits follow ICAO 9303: characters map to values (0-9 as digits,
// A-Z as 10-35, the filler '<' and anything else as 0), are weighted by the
// repeating cycle 7, 3, 1 and summed modulo 10.
//
// Validate compares the digits read from a document against digits recomputed
// from the data they protect. The result is advisory: the validator never fails,
// every field without a checksum relationship is valid, and a check that cannot
// be evaluated leaves its fields valid.
package mrz
