package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/natscan/natscan/internal/model"
)

// DefaultMaxAddressLen is the address length above which a record is
// rejected. Long addresses almost always mean the comma splitter folded
// parts of a neighboring record into the address field.
const DefaultMaxAddressLen = 70

// rejectedSubstring flags addresses carrying a former-address clause
// ("... formerly of Melbourne"), which indicates the address field
// absorbed descriptive text rather than a plain street address.
const rejectedSubstring = "formerly"

// Validator is the heuristic accept/reject predicate over records.
//
// Validation is a pure, total function: any well-formed record yields a
// verdict and no record is ever discarded. Rejected records are retained
// in their own set for inspection.
type Validator struct {
	// maxAddressLen is the rejection threshold for address length.
	maxAddressLen int
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithMaxAddressLen overrides the address length threshold.
func WithMaxAddressLen(n int) ValidatorOption {
	return func(v *Validator) {
		if n > 0 {
			v.maxAddressLen = n
		}
	}
}

// NewValidator creates a Validator with the default thresholds.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		maxAddressLen: DefaultMaxAddressLen,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Validate reports whether the record passes every heuristic filter.
// A record is rejected when its first or last name contains a digit,
// its date is the unparsed sentinel, its address contains "formerly"
// in any letter case, or its address exceeds the length threshold.
func (v *Validator) Validate(rec *model.Record) bool {
	if containsDigit(rec.First) || containsDigit(rec.Last) {
		return false
	}

	if rec.DateUnparsed() {
		return false
	}

	if strings.Contains(cases.Fold().String(rec.Address), rejectedSubstring) {
		return false
	}

	if len(rec.Address) > v.maxAddressLen {
		return false
	}

	return true
}

// Partition annotates every record's Valid field and splits the
// collection into accepted and rejected sets, both in input order.
func (v *Validator) Partition(records []*model.Record) (accepted, rejected []*model.Record) {
	for _, rec := range records {
		rec.Valid = v.Validate(rec)
		if rec.Valid {
			accepted = append(accepted, rec)
		} else {
			rejected = append(rejected, rec)
		}
	}
	return accepted, rejected
}

// containsDigit reports whether s contains any digit character.
func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}
