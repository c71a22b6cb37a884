// Package export renders the inactive-patient roster as a spreadsheet-ready
// CSV payload for the outreach workflow.
package export

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// The roster is read by the practice staff in Excel, so money fields use
// Chilean thousands grouping and the payload opens with a UTF-8 BOM.
var clPrinter = message.NewPrinter(language.MustParse("es-CL"))

var rosterHeader = []string{
	"RUT",
	"Nombre",
	"Correo",
	"Celular",
	"Última Visita",
	"Días Sin Visita",
	"Total Atenciones",
	"Total Gastado",
	"Promedio por Atención",
	"Servicios Utilizados",
}

// Filename suggests the artifact name for a roster exported on asOf.
func Filename(asOf time.Time) string {
	return fmt.Sprintf("pacientes_inactivos_%s.csv", asOf.Format("2006-01-02"))
}

// RenderRoster produces the roster payload: UTF-8 BOM, one header line, one
// line per patient. Text fields are always double-quoted (embedded commas and
// quotes stay intact); numeric fields are bare. Money values are rounded to
// the peso and grouped es-CL style.
func RenderRoster(inactive []model.Profile, asOf time.Time) []byte {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString(joinLine(quoteAll(rosterHeader)))

	for _, p := range inactive {
		daysSince := int(asOf.Sub(p.LastVisit).Hours() / 24)
		avgPerVisit := 0.0
		if p.VisitCount > 0 {
			avgPerVisit = p.LifetimeSpend / float64(p.VisitCount)
		}
		fields := []string{
			quote(p.PatientID),
			quote(p.Name),
			quote(p.Email),
			quote(p.Phone),
			quote(p.LastVisit.Format("02-01-2006")),
			strconv.Itoa(daysSince),
			strconv.Itoa(p.VisitCount),
			FormatCLP(p.LifetimeSpend),
			FormatCLP(avgPerVisit),
			quote(strings.Join(p.Services, "; ")),
		}
		b.WriteString(joinLine(fields))
	}
	return []byte(b.String())
}

// WriteRoster renders the roster and writes it to path.
func WriteRoster(path string, inactive []model.Profile, asOf time.Time) error {
	if err := os.WriteFile(path, RenderRoster(inactive, asOf), 0o644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}

// FormatCLP renders an amount rounded to the peso with es-CL grouping,
// e.g. 50000 → "50.000".
func FormatCLP(v float64) string {
	return clPrinter.Sprint(number.Decimal(int64(math.Round(v))))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = quote(f)
	}
	return out
}

func joinLine(fields []string) string {
	return strings.Join(fields, ",") + "\n"
}
