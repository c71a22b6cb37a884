package analyze

import (
	"fmt"
	"time"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
	"github.com/AlexHeisinger09/dashboard-nutricion/internal/normalize"
)

const trendMonths = 12

// MonthlyTrend buckets sessions into the trailing 12 calendar months ending
// at asOf's month, oldest first. Months without sessions still get a bucket.
// Matching is on (month, year) of the session date, not a rolling window.
func MonthlyTrend(sessions []model.Session, asOf time.Time) []model.MonthBucket {
	buckets := make([]model.MonthBucket, 0, trendMonths)
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.Local)

	for i := trendMonths - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)

		var count int
		var revenue float64
		patients := make(map[string]struct{})
		for _, s := range sessions {
			if s.SessionDate.Month() != m.Month() || s.SessionDate.Year() != m.Year() {
				continue
			}
			count++
			revenue += s.Amount
			patients[s.PatientID] = struct{}{}
		}

		avg := 0.0
		if count > 0 {
			avg = revenue / float64(count)
		}
		buckets = append(buckets, model.MonthBucket{
			Label:          monthLabel(m),
			Year:           m.Year(),
			Month:          m.Month(),
			SessionCount:   count,
			UniquePatients: len(patients),
			Revenue:        revenue,
			AvgPerSession:  avg,
		})
	}
	return buckets
}

// monthLabel renders "jul 25": Spanish short month plus two-digit year.
func monthLabel(m time.Time) string {
	return fmt.Sprintf("%s %02d", normalize.SpanishMonthAbbrev(m.Month()), m.Year()%100)
}
