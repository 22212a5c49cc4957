package analysis

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateDisplayLayout is the short en-US style rendering applied to coerced
// date cells. It is also in dateLayouts, so re-coercing a rendered date is a
// no-op.
const dateDisplayLayout = "1/2/2006"

// Slash layouts try month-first before day-first so a rendered
// dateDisplayLayout string re-parses to the same date.
var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02",
	"1/2/2006", "01/02/2006", "02/01/2006",
	"Jan 2, 2006", "January 2, 2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
