package normalize

import (
	"strconv"
	"strings"
)

// ParseAmount coerces a raw cell value to a non-negative amount.
// Numeric cells pass through; strings tolerate a currency sign, spaces and
// Chilean thousands separators. Anything unparseable (or negative) is 0 —
// dirty amounts never fail a row.
func ParseAmount(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		f = parseAmountString(t)
	default:
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}

func parseAmountString(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}
	// "25.000" / "25.000,50": dot groups thousands, comma marks decimals.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if n := strings.Count(s, "."); n > 1 || (n == 1 && len(s)-strings.Index(s, ".") == 4) {
		s = strings.ReplaceAll(s, ".", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
