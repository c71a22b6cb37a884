package normalize

import (
	"fmt"
	"strings"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/config"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// ToSession converts one raw export row into a Session. ok is false when the
// row must be dropped: missing patient RUT, missing session-date or amount
// cell, or a session date that doesn't parse. Dropped rows are a filter, not
// an error; per-row anomalies never surface past this function.
func ToSession(row model.RawRow, cols config.Columns) (model.Session, bool) {
	id := cellString(row[cols.PatientID])
	if id == "" {
		return model.Session{}, false
	}
	if isBlank(row[cols.SessionDate]) || isBlank(row[cols.Amount]) {
		return model.Session{}, false
	}

	sessionDate := ParseDate(row[cols.SessionDate])
	if sessionDate == nil {
		return model.Session{}, false
	}

	return model.Session{
		PatientID:     id,
		Name:          cellString(row[cols.Name]),
		Email:         cellString(row[cols.Email]),
		Phone:         cellString(row[cols.Phone]),
		Service:       cellString(row[cols.Service]),
		SessionDate:   *sessionDate,
		PaymentDate:   ParseDate(row[cols.PaymentDate]),
		PaymentMethod: cellString(row[cols.PaymentMethod]),
		Amount:        ParseAmount(row[cols.Amount]),
		FinalAmount:   ParseAmount(row[cols.FinalAmount]),
		DepositDate:   ParseDate(row[cols.DepositDate]),
	}, true
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
