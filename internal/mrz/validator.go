package mrz

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"checkin/internal/document"
)

const isoDateLen = len("2006-01-02")

var errMalformedDate = errors.New("malformed ISO date")

// check ties a data field to the field holding its check digit.
type check struct {
	name  string
	data  document.FieldName
	digit document.FieldName
	// prepare turns the stored value into the MRZ string the digit protects.
	// applies=false skips the check and leaves both fields valid.
	prepare func(value string) (mrz string, applies bool, err error)
}

var checks = []check{
	{name: "support_number", data: document.FieldSupportNumber, digit: document.FieldSupportNumberCheck, prepare: rawValue},
	{name: "birth_date", data: document.FieldBirthDate, digit: document.FieldBirthDateCheck, prepare: mrzDate},
	{name: "expiry_date", data: document.FieldExpiryDate, digit: document.FieldExpiryDateCheck, prepare: mrzDate},
}

// Validator runs the check-digit checks of a record. It holds no state between
// calls and is safe for concurrent use.
type Validator struct {
	logger *slog.Logger
}

// NewValidator returns a Validator that reports contained check failures to
// logger. A nil logger discards them.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Validator{logger: logger}
}

var defaultValidator = NewValidator(nil)

// Validate runs the checks with a discarding logger.
func Validate(record document.Record) document.Verdict {
	return defaultValidator.Validate(record)
}

// Validate returns a verdict covering every field of record. Each check runs in
// its own boundary; a check that errors or panics leaves its fields valid.
func (v *Validator) Validate(record document.Record) document.Verdict {
	verdict := document.AllValid()
	for _, c := range checks {
		ok, applies, err := c.evaluate(record)
		if err != nil {
			v.logger.Warn("mrz check failed, keeping fields valid",
				"check", c.name,
				"error", err,
			)
			continue
		}
		if !applies {
			continue
		}
		verdict[c.data] = ok
		verdict[c.digit] = ok
	}
	return verdict
}

func (c check) evaluate(record document.Record) (ok, applies bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, applies = false, false
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	value := record.Value(c.data)
	digit := record.Value(c.digit)
	if value == "" || digit == "" {
		return false, false, nil
	}
	data, applies, err := c.prepare(value)
	if err != nil || !applies {
		return false, applies, err
	}
	return matches(data, digit), true, nil
}

// matches reports whether digit parses to the check digit of data. A digit that
// does not parse never matches.
func matches(data, digit string) bool {
	want, err := strconv.Atoi(strings.TrimSpace(digit))
	if err != nil {
		return false
	}
	return CheckDigit(data) == want
}

func rawValue(value string) (string, bool, error) {
	return value, true, nil
}

// mrzDate rebuilds YYMMDD from YYYY-MM-DD. Values of another length are skipped.
func mrzDate(value string) (string, bool, error) {
	if len(value) != isoDateLen {
		return "", false, nil
	}
	parts := strings.Split(value, "-")
	if len(parts) != 3 || len(parts[0]) != 4 {
		return "", false, errMalformedDate
	}
	return parts[0][2:] + parts[1] + parts[2], true, nil
}
