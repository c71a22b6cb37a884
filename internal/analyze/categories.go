package analyze

import (
	"sort"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

const (
	topServices = 10
	topPrices   = 8

	// priceFloor is the minimum occurrence count a price point must exceed
	// to appear in the distribution; one-off discounts seen fewer times are
	// noise for pricing decisions.
	priceFloor = 10

	// UnspecifiedPaymentMethod labels sessions whose payment-method cell is
	// empty.
	UnspecifiedPaymentMethod = "Sin especificar"
)

// ServiceStats groups sessions by service label (the empty label is a group
// of its own), ranks by session count descending, and keeps the top 10.
// Ties keep first-appearance order.
func ServiceStats(sessions []model.Session) []model.ServiceStat {
	byName := make(map[string]*model.ServiceStat)
	patients := make(map[string]map[string]struct{})
	var order []string

	for _, s := range sessions {
		stat, seen := byName[s.Service]
		if !seen {
			stat = &model.ServiceStat{Name: s.Service}
			byName[s.Service] = stat
			patients[s.Service] = make(map[string]struct{})
			order = append(order, s.Service)
		}
		stat.Count++
		stat.Revenue += s.Amount
		patients[s.Service][s.PatientID] = struct{}{}
	}

	stats := make([]model.ServiceStat, 0, len(order))
	for _, name := range order {
		s := *byName[name]
		s.UniquePatients = len(patients[name])
		s.AvgRevenue = s.Revenue / float64(s.Count)
		stats = append(stats, s)
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	if len(stats) > topServices {
		stats = stats[:topServices]
	}
	return stats
}

// PriceBuckets groups sessions by exact amount (no binning), drops price
// points at or below the frequency floor, ranks by count descending, and
// keeps the top 8. An empty result just means no price repeats often enough.
func PriceBuckets(sessions []model.Session) []model.PriceBucket {
	counts := make(map[float64]int)
	var order []float64
	for _, s := range sessions {
		if counts[s.Amount] == 0 {
			order = append(order, s.Amount)
		}
		counts[s.Amount]++
	}

	total := len(sessions)
	buckets := make([]model.PriceBucket, 0)
	for _, amount := range order {
		n := counts[amount]
		if n <= priceFloor {
			continue
		}
		buckets = append(buckets, model.PriceBucket{
			Amount:  amount,
			Count:   n,
			Percent: 100 * float64(n) / float64(total),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	if len(buckets) > topPrices {
		buckets = buckets[:topPrices]
	}
	return buckets
}

// PaymentMethodStats groups sessions by payment-method label, with the empty
// label folded into "Sin especificar". Ranked by count descending, never
// truncated.
func PaymentMethodStats(sessions []model.Session) []model.PaymentMethodStat {
	counts := make(map[string]int)
	var order []string
	for _, s := range sessions {
		method := s.PaymentMethod
		if method == "" {
			method = UnspecifiedPaymentMethod
		}
		if counts[method] == 0 {
			order = append(order, method)
		}
		counts[method]++
	}

	total := len(sessions)
	stats := make([]model.PaymentMethodStat, 0, len(order))
	for _, method := range order {
		stats = append(stats, model.PaymentMethodStat{
			Method:  method,
			Count:   counts[method],
			Percent: 100 * float64(counts[method]) / float64(total),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats
}
