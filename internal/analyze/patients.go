package analyze

import (
	"time"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// BuildProfiles folds sessions into one Profile per distinct RUT, in order
// of first appearance. Identity fields (name, email, phone) come from the
// first session seen for the RUT and are never overwritten by later rows,
// even when they conflict; totals and date bounds accumulate across all of
// the patient's sessions regardless of fold order.
func BuildProfiles(sessions []model.Session) []model.Profile {
	byID := make(map[string]*model.Profile, len(sessions))
	order := make([]string, 0, len(sessions))

	for _, s := range sessions {
		p, seen := byID[s.PatientID]
		if !seen {
			byID[s.PatientID] = &model.Profile{
				PatientID:     s.PatientID,
				Name:          s.Name,
				Email:         s.Email,
				Phone:         s.Phone,
				FirstVisit:    s.SessionDate,
				LastVisit:     s.SessionDate,
				VisitCount:    1,
				LifetimeSpend: s.Amount,
				Services:      []string{s.Service},
			}
			order = append(order, s.PatientID)
			continue
		}
		p.VisitCount++
		p.LifetimeSpend += s.Amount
		if !p.HasService(s.Service) {
			p.Services = append(p.Services, s.Service)
		}
		// Ties keep the existing bound.
		if s.SessionDate.After(p.LastVisit) {
			p.LastVisit = s.SessionDate
		}
		if s.SessionDate.Before(p.FirstVisit) {
			p.FirstVisit = s.SessionDate
		}
	}

	profiles := make([]model.Profile, len(order))
	for i, id := range order {
		profiles[i] = *byID[id]
	}
	return profiles
}

// InactivePatients returns the profiles whose last visit precedes asOf minus
// the given number of calendar months. The cutoff is calendar arithmetic,
// not a day count.
func InactivePatients(profiles []model.Profile, asOf time.Time, months int) []model.Profile {
	cutoff := asOf.AddDate(0, -months, 0)
	inactive := make([]model.Profile, 0)
	for _, p := range profiles {
		if p.LastVisit.Before(cutoff) {
			inactive = append(inactive, p)
		}
	}
	return inactive
}

// RetentionRate is the percentage of patients with more than one visit.
// Defined as 0 for an empty patient set.
func RetentionRate(profiles []model.Profile) float64 {
	if len(profiles) == 0 {
		return 0
	}
	repeat := 0
	for _, p := range profiles {
		if p.VisitCount > 1 {
			repeat++
		}
	}
	return 100 * float64(repeat) / float64(len(profiles))
}
