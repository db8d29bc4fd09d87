package reader

import "time"

// Candidate layouts for datetime conversion, tried in order. Unpadded numeric
// elements accept both one- and two-digit inputs, and Go's parser accepts a
// fractional second after the seconds element even when the layout omits it.
var (
	datetimeLayoutsMonthFirst = []string{
		time.RFC3339Nano,
		"2006-1-2T15:04:05",
		"2006-1-2 15:04:05",
		"2006-1-2",
		"2006/1/2",
		"1/2/2006 15:04:05",
		"1/2/2006",
		"1-2-2006",
		"15:04:05",
	}

	datetimeLayoutsDayFirst = []string{
		time.RFC3339Nano,
		"2006-1-2T15:04:05",
		"2006-1-2 15:04:05",
		"2006-1-2",
		"2006/1/2",
		"2/1/2006 15:04:05",
		"2/1/2006",
		"2-1-2006",
		"15:04:05",
	}
)

// parseDatetime converts a datetime-like field to epoch milliseconds.
// dayFirst selects the day-before-month reading of ambiguous numeric dates.
func parseDatetime(s string, dayFirst bool) (int64, bool) {
	layouts := datetimeLayoutsMonthFirst
	if dayFirst {
		layouts = datetimeLayoutsDayFirst
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}

	return 0, false
}
