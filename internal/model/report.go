package model

import "time"

// MonthBucket is one calendar-month window of the 12-month trend, zero-filled
// when the month has no sessions.
type MonthBucket struct {
	Label string     `json:"mes"` // e.g. "jul 25"
	Year  int        `json:"-"`
	Month time.Month `json:"-"`

	SessionCount   int     `json:"atenciones"`
	UniquePatients int     `json:"pacientes"`
	Revenue        float64 `json:"ingresos"`
	AvgPerSession  float64 `json:"promedioAtencion"` // 0 when SessionCount == 0
}

// ServiceStat aggregates sessions sharing one service label.
type ServiceStat struct {
	Name           string  `json:"nombre"`
	Count          int     `json:"cantidad"`
	Revenue        float64 `json:"ingresos"`
	UniquePatients int     `json:"pacientesUnicos"`
	AvgRevenue     float64 `json:"ingresoPromedio"`
}

// PriceBucket aggregates sessions sharing one exact amount. Only price points
// above the frequency floor survive into the report.
type PriceBucket struct {
	Amount float64 `json:"precio"`
	Count  int     `json:"cantidad"`
	// Percent of total session count, full precision; round at presentation.
	Percent float64 `json:"porcentaje"`
}

// PaymentMethodStat aggregates sessions by payment-method label.
type PaymentMethodStat struct {
	Method  string  `json:"medio"`
	Count   int     `json:"cantidad"`
	Percent float64 `json:"porcentaje"`
}

// Report is the immutable snapshot produced by one pipeline run. A new file
// ingestion replaces the whole Report; nothing is merged incrementally.
type Report struct {
	TotalSessions     int     `json:"totalAtenciones"`
	TotalPatients     int     `json:"totalPacientes"`
	PatientsThisMonth int     `json:"pacientesEsteMes"`
	RetentionRate     float64 `json:"tasaRetencion"` // percent, 0 when no patients

	TotalRevenue               float64 `json:"totalIngresos"`
	AvgAmountPerSession        float64 `json:"promedioMonto"`
	AvgLifetimeSpendPerPatient float64 `json:"valorPromedioPorPaciente"`

	InactivePatients []Profile           `json:"pacientesInactivos"`
	Monthly          []MonthBucket       `json:"monthlyData"`
	Services         []ServiceStat       `json:"serviciosData"`
	Prices           []PriceBucket       `json:"preciosData"`
	PaymentMethods   []PaymentMethodStat `json:"mediosPagoData"`

	Patients []Profile `json:"pacientes"`
	Sessions []Session `json:"atenciones"`
}
