package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Columns is the label dictionary for the agenda system's export. Labels are
// matched exactly (case-sensitive) against the file's header row.
type Columns struct {
	PatientID     string `yaml:"rut_paciente"`
	Name          string `yaml:"nombre"`
	Email         string `yaml:"correo"`
	Phone         string `yaml:"celular"`
	Service       string `yaml:"servicio"`
	SessionDate   string `yaml:"fecha_sesion"`
	PaymentDate   string `yaml:"fecha_pago"`
	PaymentMethod string `yaml:"medio_pago"`
	Amount        string `yaml:"monto"`
	FinalAmount   string `yaml:"monto_final"`
	DepositDate   string `yaml:"fecha_abono"`
}

// DefaultColumns returns the labels the agenda system emits today.
func DefaultColumns() Columns {
	return Columns{
		PatientID:     "Rut paciente",
		Name:          "Nombre",
		Email:         "Correo",
		Phone:         "Celular",
		Service:       "Servicio",
		SessionDate:   "Fecha Sesión",
		PaymentDate:   "Fecha Pago",
		PaymentMethod: "Medio de Pago",
		Amount:        "Monto",
		FinalAmount:   "Monto Final",
		DepositDate:   "Fecha Abono",
	}
}

// Config holds all runtime configuration for a nutrireport run.
type Config struct {
	FilePath  string
	LogFormat string // "text" or "json"
	AsOf      string // "YYYY-MM-DD"; empty means the current day
	JSONPath  string // optional structured report artifact (analyze)
	OutPath   string // roster destination (export-inactive)

	// InactiveAfterMonths is the number of whole calendar months without a
	// visit before a patient counts as inactive.
	InactiveAfterMonths int

	Columns Columns
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	InactiveAfterMonths int     `yaml:"inactive_after_months"`
	Columns             Columns `yaml:"columns"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Empty column entries keep their defaults.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.InactiveAfterMonths < 0 {
		return fmt.Errorf("inactive_after_months must be positive, got %d", yc.InactiveAfterMonths)
	}
	if yc.InactiveAfterMonths > 0 {
		c.InactiveAfterMonths = yc.InactiveAfterMonths
	}
	mergeColumns(&c.Columns, yc.Columns)
	return nil
}

func mergeColumns(dst *Columns, src Columns) {
	for _, f := range []struct {
		d *string
		s string
	}{
		{&dst.PatientID, src.PatientID},
		{&dst.Name, src.Name},
		{&dst.Email, src.Email},
		{&dst.Phone, src.Phone},
		{&dst.Service, src.Service},
		{&dst.SessionDate, src.SessionDate},
		{&dst.PaymentDate, src.PaymentDate},
		{&dst.PaymentMethod, src.PaymentMethod},
		{&dst.Amount, src.Amount},
		{&dst.FinalAmount, src.FinalAmount},
		{&dst.DepositDate, src.DepositDate},
	} {
		if f.s != "" {
			*f.d = f.s
		}
	}
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if c.InactiveAfterMonths < 1 {
		return fmt.Errorf("inactive threshold must be at least 1 month, got %d", c.InactiveAfterMonths)
	}
	return nil
}

// AsOfTime resolves the --as-of flag. An empty value means the current day.
// The result is truncated to midnight local time so every aggregator sees
// the same reference date.
func (c *Config) AsOfTime() (time.Time, error) {
	if c.AsOf == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation("2006-01-02", c.AsOf, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --as-of: %w", err)
	}
	return t, nil
}
