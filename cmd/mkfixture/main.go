// mkfixture generates a synthetic session export for tests and demos.
// Output format follows the extension: .xlsx or .csv.
// Usage: go run ./cmd/mkfixture --out testdata/atenciones.xlsx --rows 300
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/config"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/normalize"
)

var services = []string{
	"Consulta Nutricional",
	"Control Nutricional",
	"Plan Alimentación Deportiva",
	"Evaluación Antropométrica",
	"Asesoría Online",
}

var paymentMethods = []string{"Transferencia", "Débito", "Crédito", "Efectivo", ""}

var prices = []float64{20000, 25000, 30000, 35000, 45000}

func main() {
	out := flag.String("out", "testdata/atenciones.xlsx", "output file (.xlsx or .csv)")
	rows := flag.Int("rows", 300, "number of session rows")
	patients := flag.Int("patients", 80, "number of distinct patients")
	months := flag.Int("months", 14, "spread sessions over this many trailing months")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	now := time.Now()

	cols := config.DefaultColumns()
	header := []string{
		cols.PatientID, cols.Name, cols.Email, cols.Phone, cols.Service,
		cols.SessionDate, cols.PaymentDate, cols.PaymentMethod,
		cols.Amount, cols.FinalAmount, cols.DepositDate,
	}

	records := make([][]string, 0, *rows)
	for i := 0; i < *rows; i++ {
		pid := rng.Intn(*patients) + 1
		rut := fmt.Sprintf("%d.%03d.%03d-%d", 10+pid%15, pid*37%1000, pid*91%1000, pid%10)
		day := now.AddDate(0, 0, -rng.Intn(*months*30))
		amount := prices[rng.Intn(len(prices))]

		records = append(records, []string{
			rut,
			fmt.Sprintf("Paciente %03d", pid),
			fmt.Sprintf("paciente%03d@example.cl", pid),
			fmt.Sprintf("+569%08d", 10000000+pid*733),
			services[rng.Intn(len(services))],
			spanishDate(day, true),
			spanishDate(day, false),
			paymentMethods[rng.Intn(len(paymentMethods))],
			strconv.FormatFloat(amount, 'f', -1, 64),
			strconv.FormatFloat(amount, 'f', -1, 64),
			spanishDate(day.AddDate(0, 0, 1), false),
		})
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch strings.ToLower(filepath.Ext(*out)) {
	case ".xlsx":
		err = writeXLSX(*out, header, records)
	case ".csv":
		err = writeCSV(*out, header, records)
	default:
		err = fmt.Errorf("unsupported output extension %q", filepath.Ext(*out))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows (%d patients) to %s\n", len(records), *patients, *out)
}

// spanishDate renders the agenda system's date form, e.g. "14-jul-2025 16:40".
func spanishDate(t time.Time, withTime bool) string {
	s := fmt.Sprintf("%02d-%s-%04d", t.Day(), normalize.SpanishMonthAbbrev(t.Month()), t.Year())
	if withTime {
		s += fmt.Sprintf(" %02d:%02d", 9+t.Day()%9, (t.Day()*13)%60)
	}
	return s
}

func writeXLSX(path string, header []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rec); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
