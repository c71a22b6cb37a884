package normalize

import (
	"strconv"
	"strings"
	"time"
)

// Month abbreviations used by the agenda export, e.g. "14-jul-2025 16:40".
var spanishMonths = map[string]time.Month{
	"ene": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December,
}

var monthAbbrevs = []string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Fallback layouts for cells that don't use the Spanish abbreviation form.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// SpanishMonthAbbrev returns the three-letter Spanish abbreviation for m.
func SpanishMonthAbbrev(m time.Month) string {
	return monthAbbrevs[int(m)-1]
}

// ParseDate coerces a raw cell value to a date. Already-typed dates pass
// through; strings go through ParseDateString. Returns nil when the value
// is absent or unparseable.
func ParseDate(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		return t
	case string:
		return ParseDateString(t)
	default:
		return nil
	}
}

// ParseDateString parses "DD-mmm-YYYY[ HH:MM]" with Spanish month
// abbreviations (case-insensitive), falling back to common numeric layouts.
// Returns nil if the input is empty or unparseable. The time-of-day part,
// when present, is discarded: aggregation is calendar-day based.
func ParseDateString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, ok := parseSpanish(s); ok {
		return &t
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
			return &day
		}
	}
	return nil
}

func parseSpanish(s string) (time.Time, bool) {
	datePart, _, _ := strings.Cut(s, " ")
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, ok := spanishMonths[strings.ToLower(parts[1])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1000 {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), true
}
