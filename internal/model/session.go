package model

import "time"

// RawRow is one row of the uploaded export, keyed by column label exactly as
// it appears in the header. Values are strings for text cells and time.Time
// for cells the reader already resolved to a date.
type RawRow map[string]any

// Session is one normalized billable visit. Rows that survive normalization
// always carry a patient RUT and a valid session date; everything else may be
// zero-valued.
type Session struct {
	PatientID     string     `json:"rut"`
	Name          string     `json:"nombre"`
	Email         string     `json:"correo"`
	Phone         string     `json:"celular"`
	Service       string     `json:"servicio"`
	SessionDate   time.Time  `json:"fechaSesion"`
	PaymentDate   *time.Time `json:"fechaPago,omitempty"`
	PaymentMethod string     `json:"medioPago"`
	Amount        float64    `json:"monto"`

	// Present in the export and parsed, but not part of any aggregate.
	FinalAmount float64    `json:"montoFinal"`
	DepositDate *time.Time `json:"fechaAbono,omitempty"`
}
