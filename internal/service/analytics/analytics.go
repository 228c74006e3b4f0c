// Package analytics computes derived views over collection snapshots. The
// functions are pure and recomputed per request; nothing here caches or
// maintains incremental state.
package analytics

import (
	"time"

	"github.com/medidash/clinic-api/internal/model"
)

// UnknownGender is the bucket for patients with an empty gender field.
const UnknownGender = "unknown"

// CountByGender groups patients by gender.
func CountByGender(patients []*model.Patient) map[string]int {
	counts := make(map[string]int)
	for _, p := range patients {
		gender := p.Gender
		if gender == "" {
			gender = UnknownGender
		}
		counts[gender]++
	}
	return counts
}

// CountByDoctor groups appointments by the assigned doctor.
func CountByDoctor(appointments []*model.Appointment) map[string]int {
	counts := make(map[string]int)
	for _, a := range appointments {
		counts[a.Doctor]++
	}
	return counts
}

// UpcomingCount counts appointments strictly after now.
func UpcomingCount(appointments []*model.Appointment, now time.Time) int {
	count := 0
	for _, a := range appointments {
		if a.Datetime.After(now) {
			count++
		}
	}
	return count
}

// TodayAppointments returns appointments on today's calendar date, capped to
// the first limit entries in list order.
func TodayAppointments(appointments []*model.Appointment, today time.Time, limit int) []*model.Appointment {
	y, m, d := today.Date()
	out := make([]*model.Appointment, 0, limit)
	for _, a := range appointments {
		ay, am, ad := a.Datetime.Date()
		if ay == y && am == m && ad == d {
			out = append(out, a)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// LowStock counts medicines with stock strictly below threshold.
func LowStock(medicines []*model.Medicine, threshold int) int {
	count := 0
	for _, m := range medicines {
		if m.Stock < threshold {
			count++
		}
	}
	return count
}
