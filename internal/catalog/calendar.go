package catalog

import (
	"sort"

	"backoffice/internal/domain/models"
)

// Day is one calendar cell: a date and its reservations sorted by time.
type Day struct {
	Date         string               `json:"fecha"`
	Reservations []models.Reservation `json:"reservas"`
}

// GroupByDate buckets reservations per fecha, days ascending and each
// day's entries ordered by hora. Dates are compared lexically, which is
// correct for the YYYY-MM-DD wire format.
func GroupByDate(items []models.Reservation) []Day {
	buckets := map[string][]models.Reservation{}
	for _, r := range items {
		buckets[r.Date] = append(buckets[r.Date], r)
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]Day, 0, len(dates))
	for _, d := range dates {
		day := buckets[d]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Time < day[j].Time
		})
		out = append(out, Day{Date: d, Reservations: day})
	}
	return out
}

// CountByStatus tallies reservations per estado, for the dashboard
// summary cards.
func CountByStatus(items []models.Reservation) map[string]int {
	out := map[string]int{}
	for _, r := range items {
		out[r.Status]++
	}
	return out
}
