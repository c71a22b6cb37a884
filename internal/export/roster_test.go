package export

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sampleInactive() []model.Profile {
	return []model.Profile{
		{
			PatientID:     "11.111.111-1",
			Name:          "Ana Pérez, la de siempre", // embedded comma
			Email:         "ana@example.cl",
			Phone:         "+56912345678",
			FirstVisit:    day(2025, 1, 10),
			LastVisit:     day(2025, 5, 20),
			VisitCount:    3,
			LifetimeSpend: 50000,
			Services:      []string{"Consulta Nutricional", "Control"},
		},
		{
			PatientID:     "22.222.222-2",
			Name:          "Benito",
			LastVisit:     day(2025, 4, 1),
			FirstVisit:    day(2025, 4, 1),
			VisitCount:    1,
			LifetimeSpend: 33333,
			Services:      []string{"Asesoría Online"},
		},
	}
}

func TestFilename(t *testing.T) {
	got := Filename(day(2025, 9, 1))
	if got != "pacientes_inactivos_2025-09-01.csv" {
		t.Errorf("Filename = %q", got)
	}
}

func TestRenderRoster_Shape(t *testing.T) {
	payload := string(RenderRoster(sampleInactive(), day(2025, 9, 1)))

	if !strings.HasPrefix(payload, "\uFEFF") {
		t.Error("payload must start with a UTF-8 BOM")
	}
	lines := strings.Split(strings.TrimRight(payload, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 patients", len(lines))
	}
	if !strings.Contains(lines[0], `"Días Sin Visita"`) || !strings.Contains(lines[0], `"Servicios Utilizados"`) {
		t.Errorf("header mismatch: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Ana Pérez, la de siempre"`) {
		t.Errorf("text fields must be quoted: %s", lines[1])
	}
	if !strings.Contains(lines[1], "50.000") {
		t.Errorf("lifetime spend must use es-CL grouping: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"Consulta Nutricional; Control"`) {
		t.Errorf("services must join with '; ': %s", lines[1])
	}
}

func TestRenderRoster_DaysSince(t *testing.T) {
	payload := string(RenderRoster(sampleInactive()[:1], day(2025, 9, 1)))
	rec := parseCSV(t, payload)[1]

	want := int(day(2025, 9, 1).Sub(day(2025, 5, 20)).Hours() / 24)
	got, err := strconv.Atoi(rec[5])
	if err != nil {
		t.Fatalf("days-since field not numeric: %q", rec[5])
	}
	if got != want {
		t.Errorf("days since = %d, want %d", got, want)
	}
}

func TestRenderRoster_RoundTrip(t *testing.T) {
	inactive := sampleInactive()
	records := parseCSV(t, string(RenderRoster(inactive, day(2025, 9, 1))))

	if len(records) != len(inactive)+1 {
		t.Fatalf("got %d records, want %d", len(records), len(inactive)+1)
	}
	for i, p := range inactive {
		rec := records[i+1]
		if rec[0] != p.PatientID {
			t.Errorf("row %d: RUT = %q, want %q", i, rec[0], p.PatientID)
		}
		visits, err := strconv.Atoi(rec[6])
		if err != nil || visits != p.VisitCount {
			t.Errorf("row %d: visit count = %q, want %d", i, rec[6], p.VisitCount)
		}
		spend := parseCLP(t, rec[7])
		if math.Abs(spend-p.LifetimeSpend) >= 1 {
			t.Errorf("row %d: spend = %v, want %v within one peso", i, spend, p.LifetimeSpend)
		}
		avg := parseCLP(t, rec[8])
		wantAvg := p.LifetimeSpend / float64(p.VisitCount)
		if math.Abs(avg-wantAvg) >= 1 {
			t.Errorf("row %d: avg per visit = %v, want %v within one peso", i, avg, wantAvg)
		}
	}
}

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{50000, "50.000"},
		{1234567, "1.234.567"},
		{16666.6667, "16.667"},
	}
	for _, c := range cases {
		if got := FormatCLP(c.in); got != c.want {
			t.Errorf("FormatCLP(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

// parseCSV re-reads the rendered payload the way a spreadsheet would.
func parseCSV(t *testing.T, payload string) [][]string {
	t.Helper()
	payload = strings.TrimPrefix(payload, "\uFEFF")
	records, err := csv.NewReader(strings.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("re-parse roster: %v", err)
	}
	return records
}

// parseCLP undoes es-CL thousands grouping.
func parseCLP(t *testing.T, s string) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ".", ""), 64)
	if err != nil {
		t.Fatalf("parse CLP %q: %v", s, err)
	}
	return f
}
