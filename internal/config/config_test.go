package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile_ColumnOverride(t *testing.T) {
	path := writeConfig(t, "columns:\n  rut_paciente: RUT\n  monto: Valor\n")

	c := Config{Columns: DefaultColumns()}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Columns.PatientID != "RUT" {
		t.Errorf("PatientID = %q, want RUT", c.Columns.PatientID)
	}
	if c.Columns.Amount != "Valor" {
		t.Errorf("Amount = %q, want Valor", c.Columns.Amount)
	}
	// Untouched entries keep their defaults.
	if c.Columns.SessionDate != "Fecha Sesión" {
		t.Errorf("SessionDate = %q, want default", c.Columns.SessionDate)
	}
}

func TestLoadFromFile_InactiveThreshold(t *testing.T) {
	path := writeConfig(t, "inactive_after_months: 3\n")

	c := Config{Columns: DefaultColumns(), InactiveAfterMonths: 2}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.InactiveAfterMonths != 3 {
		t.Errorf("InactiveAfterMonths = %d, want 3", c.InactiveAfterMonths)
	}
}

func TestLoadFromFile_NegativeThreshold(t *testing.T) {
	path := writeConfig(t, "inactive_after_months: -1\n")

	c := Config{Columns: DefaultColumns(), InactiveAfterMonths: 2}
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for negative threshold")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	c := Config{Columns: DefaultColumns(), InactiveAfterMonths: 2}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when FilePath is empty")
	}

	f := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.FilePath = f
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	c.InactiveAfterMonths = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero inactivity threshold")
	}
}

func TestAsOfTime(t *testing.T) {
	c := Config{AsOf: "2025-08-31"}
	got, err := c.AsOfTime()
	if err != nil {
		t.Fatalf("AsOfTime: %v", err)
	}
	if got.Year() != 2025 || got.Month() != 8 || got.Day() != 31 {
		t.Errorf("AsOfTime = %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("AsOfTime should be midnight, got %v", got)
	}

	c.AsOf = "31-08-2025"
	if _, err := c.AsOfTime(); err == nil {
		t.Fatal("expected error for wrong --as-of layout")
	}
}
