package analyze

import (
	"time"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// Synthesize assembles the final Report from the aggregator outputs. It adds
// the totals and ratios that span aggregators; every division guards the
// zero-denominator case here so presentation code never sees NaN.
func Synthesize(sessions []model.Session, profiles []model.Profile, asOf time.Time, inactiveAfterMonths int) *model.Report {
	var totalRevenue float64
	thisMonth := make(map[string]struct{})
	for _, s := range sessions {
		totalRevenue += s.Amount
		if s.SessionDate.Month() == asOf.Month() && s.SessionDate.Year() == asOf.Year() {
			thisMonth[s.PatientID] = struct{}{}
		}
	}

	avgPerSession := 0.0
	if len(sessions) > 0 {
		avgPerSession = totalRevenue / float64(len(sessions))
	}
	avgPerPatient := 0.0
	if len(profiles) > 0 {
		avgPerPatient = totalRevenue / float64(len(profiles))
	}

	return &model.Report{
		TotalSessions:     len(sessions),
		TotalPatients:     len(profiles),
		PatientsThisMonth: len(thisMonth),
		RetentionRate:     RetentionRate(profiles),

		TotalRevenue:               totalRevenue,
		AvgAmountPerSession:        avgPerSession,
		AvgLifetimeSpendPerPatient: avgPerPatient,

		InactivePatients: InactivePatients(profiles, asOf, inactiveAfterMonths),
		Monthly:          MonthlyTrend(sessions, asOf),
		Services:         ServiceStats(sessions),
		Prices:           PriceBuckets(sessions),
		PaymentMethods:   PaymentMethodStats(sessions),

		Patients: profiles,
		Sessions: sessions,
	}
}
