package extract

import (
	"errors"
	"time"
)

// ErrUnparsableDate is returned when matched date text fits none of the
// calendar layouts. Callers keep the record and mark its date with the
// sentinel instead of propagating this as a failure.
var ErrUnparsableDate = errors.New("date text matches no calendar layout")

// centuryBase resolves two-digit years. The digitized gazette corpus
// ends well before 2000, so every two-digit year resolves into
// 1900-1999: "66" is 1966, "04" is 1904. Four-digit years are taken
// as written.
const centuryBase = 1900

// dateLayouts are the calendar layouts tried in preference order. The
// dotted day.month.year forms come first, then the comma-misread and
// space-delimited variants matching the date rule table.
var dateLayouts = []struct {
	layout       string
	twoDigitYear bool
}{
	{layout: "2.1.06", twoDigitYear: true},
	{layout: "2.1.2006"},
	{layout: "2,1.06", twoDigitYear: true},
	{layout: "2,1.2006"},
	{layout: "2 1.06", twoDigitYear: true},
	{layout: "2 1.2006"},
	{layout: "2 1 06", twoDigitYear: true},
	{layout: "2 1 2006"},
}

// ParseDate resolves matched date text to a calendar date at UTC
// midnight. Layouts are tried in fixed preference order; the first that
// parses wins. Returns ErrUnparsableDate when no layout fits.
func ParseDate(text string) (time.Time, error) {
	for _, l := range dateLayouts {
		t, err := time.Parse(l.layout, text)
		if err != nil {
			continue
		}

		year := t.Year()
		if l.twoDigitYear {
			year = centuryBase + year%100
		}

		return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, ErrUnparsableDate
}
