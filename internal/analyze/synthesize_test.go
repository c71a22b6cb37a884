package analyze

import (
	"testing"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// The reference scenario: two sessions for one patient a month apart,
// one session for another patient.
func TestSynthesize_Scenario(t *testing.T) {
	asOf := day(2025, 8, 15)
	sessions := []model.Session{
		ses("11.111.111-1", day(2025, 7, 14), 20000),
		ses("11.111.111-1", day(2025, 8, 14), 30000),
		ses("22.222.222-2", day(2025, 8, 10), 25000),
	}
	profiles := BuildProfiles(sessions)
	r := Synthesize(sessions, profiles, asOf, 2)

	if r.TotalPatients != 2 {
		t.Errorf("TotalPatients = %d, want 2", r.TotalPatients)
	}
	if r.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", r.TotalSessions)
	}
	if r.TotalRevenue != 75000 {
		t.Errorf("TotalRevenue = %v, want 75000", r.TotalRevenue)
	}

	var repeat *model.Profile
	for i := range r.Patients {
		if r.Patients[i].PatientID == "11.111.111-1" {
			repeat = &r.Patients[i]
		}
	}
	if repeat == nil {
		t.Fatal("patient 11.111.111-1 missing from report")
	}
	if repeat.VisitCount != 2 || repeat.LifetimeSpend != 50000 {
		t.Errorf("repeat patient: VisitCount=%d LifetimeSpend=%v, want 2 and 50000",
			repeat.VisitCount, repeat.LifetimeSpend)
	}

	if r.AvgAmountPerSession != 25000 {
		t.Errorf("AvgAmountPerSession = %v, want 25000", r.AvgAmountPerSession)
	}
	if r.AvgLifetimeSpendPerPatient != 37500 {
		t.Errorf("AvgLifetimeSpendPerPatient = %v, want 37500", r.AvgLifetimeSpendPerPatient)
	}
	// Both patients have an august session.
	if r.PatientsThisMonth != 2 {
		t.Errorf("PatientsThisMonth = %d, want 2", r.PatientsThisMonth)
	}
	if r.RetentionRate != 50 {
		t.Errorf("RetentionRate = %v, want 50", r.RetentionRate)
	}
	if len(r.InactivePatients) != 0 {
		t.Errorf("no patient should be inactive: %+v", r.InactivePatients)
	}
	if len(r.Monthly) != 12 {
		t.Errorf("Monthly has %d buckets, want 12", len(r.Monthly))
	}
}

func TestSynthesize_EmptyInputGuards(t *testing.T) {
	r := Synthesize(nil, nil, day(2025, 8, 15), 2)

	if r.TotalSessions != 0 || r.TotalPatients != 0 {
		t.Errorf("totals not zero: %+v", r)
	}
	// Every ratio must be a defined number, never NaN.
	for name, v := range map[string]float64{
		"RetentionRate":              r.RetentionRate,
		"AvgAmountPerSession":        r.AvgAmountPerSession,
		"AvgLifetimeSpendPerPatient": r.AvgLifetimeSpendPerPatient,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0 on empty input", name, v)
		}
	}
	if len(r.Monthly) != 12 {
		t.Errorf("Monthly has %d buckets, want 12 even with no sessions", len(r.Monthly))
	}
	if r.InactivePatients == nil || r.Prices == nil {
		t.Error("slices should be empty, not nil, for a stable JSON artifact")
	}
}
