package normalize

import (
	"testing"
	"time"
)

func TestParseDateString_SpanishForm(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"14-jul-2025 16:40", time.Date(2025, time.July, 14, 0, 0, 0, 0, time.Local)},
		{"01-ene-2024", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)},
		{"31-DIC-2023", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local)},
		{"05-Ago-2025 09:15", time.Date(2025, time.August, 5, 0, 0, 0, 0, time.Local)},
	}
	for _, c := range cases {
		got := ParseDateString(c.in)
		if got == nil {
			t.Errorf("ParseDateString(%q) = nil, want %v", c.in, c.want)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDateString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateString_GenericLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-07-14", time.Date(2025, time.July, 14, 0, 0, 0, 0, time.Local)},
		{"14/07/2025", time.Date(2025, time.July, 14, 0, 0, 0, 0, time.Local)},
		{"2025-07-14 16:40:00", time.Date(2025, time.July, 14, 0, 0, 0, 0, time.Local)},
	}
	for _, c := range cases {
		got := ParseDateString(c.in)
		if got == nil || !got.Equal(c.want) {
			t.Errorf("ParseDateString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateString_Unparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "14-xyz-2025", "99-jul-2025", "14-jul-25x"} {
		if got := ParseDateString(in); got != nil {
			t.Errorf("ParseDateString(%q) = %v, want nil", in, got)
		}
	}
}

func TestParseDate_TypedValues(t *testing.T) {
	d := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.Local)
	if got := ParseDate(d); got == nil || !got.Equal(d) {
		t.Errorf("ParseDate(time.Time) = %v, want %v", got, d)
	}
	if got := ParseDate(time.Time{}); got != nil {
		t.Errorf("ParseDate(zero time) = %v, want nil", got)
	}
	if got := ParseDate(nil); got != nil {
		t.Errorf("ParseDate(nil) = %v, want nil", got)
	}
	if got := ParseDate(42); got != nil {
		t.Errorf("ParseDate(int) = %v, want nil", got)
	}
}

func TestSpanishMonthAbbrev(t *testing.T) {
	if got := SpanishMonthAbbrev(time.January); got != "ene" {
		t.Errorf("SpanishMonthAbbrev(January) = %q, want ene", got)
	}
	if got := SpanishMonthAbbrev(time.December); got != "dic" {
		t.Errorf("SpanishMonthAbbrev(December) = %q, want dic", got)
	}
}
