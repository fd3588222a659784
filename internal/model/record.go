package model

import "time"

// UnparsedDate is the textual sentinel used wherever a record's date
// could not be resolved to a calendar date. The in-memory sentinel is the
// zero time.Time; this string is its external representation in tables
// and reports.
const UnparsedDate = "unparsed"

// DateLayout is the layout used to render normalized dates.
const DateLayout = "2006-01-02"

// Record is one extracted naturalisation entry.
//
// A record is created by the extractor and never mutated afterwards,
// except for the Valid annotation added by the validator. Support holds
// exactly one tag of each kind in the canonical order LASTNAME,
// FIRSTNAME, ADDR, DATE; the tags reference spans of the originating
// article and are retained for later inspection and review.
type Record struct {
	// ArticleID identifies the article the record was extracted from.
	ArticleID string `json:"article_id"`

	// First is the given name.
	First string `json:"first"`

	// Last is the surname.
	Last string `json:"last"`

	// Address is the address field. Commas inside an address are not
	// distinguishable from field separators, so trailing pieces of a
	// run are folded into this field.
	Address string `json:"address"`

	// DateRaw is the date text exactly as matched.
	DateRaw string `json:"date_raw"`

	// Date is the resolved calendar date, or the zero time when the
	// matched text failed calendar parsing.
	Date time.Time `json:"date"`

	// Support holds the four originating tags in canonical order.
	Support []Tag `json:"support"`

	// Valid is the validator's verdict. Meaningful only after the
	// record has passed through the validator.
	Valid bool `json:"valid"`
}

// DateUnparsed reports whether the record carries the sentinel date.
func (r *Record) DateUnparsed() bool {
	return r.Date.IsZero()
}

// FormatDate renders the normalized date as YYYY-MM-DD, or the
// UnparsedDate sentinel when no calendar date was resolved.
func (r *Record) FormatDate() string {
	if r.DateUnparsed() {
		return UnparsedDate
	}
	return r.Date.Format(DateLayout)
}

// Row converts the record into its tabular output form.
func (r *Record) Row() Row {
	return Row{
		ID:         r.ArticleID,
		First:      r.First,
		Last:       r.Last,
		Address:    r.Address,
		Date:       r.FormatDate(),
		DateString: r.DateRaw,
	}
}
