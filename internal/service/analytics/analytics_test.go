package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/seed"
)

func TestCountByGenderOverSeededDataset(t *testing.T) {
	patients := seed.Patients(time.Now())
	counts := CountByGender(patients)
	assert.Equal(t, map[string]int{"F": 4, "M": 4}, counts)
}

func TestCountByGenderBucketsEmptyAsUnknown(t *testing.T) {
	patients := []*model.Patient{
		{ID: "P-1", Gender: "F"},
		{ID: "P-2"},
		{ID: "P-3"},
	}
	counts := CountByGender(patients)
	assert.Equal(t, 1, counts["F"])
	assert.Equal(t, 2, counts[UnknownGender])
}

func TestCountByDoctor(t *testing.T) {
	appointments := seed.Appointments(seed.Patients(time.Now()), time.Now())
	counts := CountByDoctor(appointments)
	// 8 appointments over a 3-doctor roster.
	assert.Equal(t, 3, counts["Dr. Suraj"])
	assert.Equal(t, 3, counts["Dr. Sen"])
	assert.Equal(t, 2, counts["Dr. Alex"])
}

func TestUpcomingCountIsStrict(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	appointments := []*model.Appointment{
		{ID: "A-1", Datetime: now.Add(time.Minute)},
		{ID: "A-2", Datetime: now},
		{ID: "A-3", Datetime: now.Add(-time.Minute)},
	}
	assert.Equal(t, 1, UpcomingCount(appointments, now))
}

func TestTodayAppointmentsCapsAtLimit(t *testing.T) {
	today := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	var appointments []*model.Appointment
	for i := 0; i < 10; i++ {
		appointments = append(appointments, &model.Appointment{
			ID:       string(rune('a' + i)),
			Datetime: today.Add(time.Duration(i) * time.Minute),
		})
	}
	appointments = append(appointments, &model.Appointment{
		ID:       "tomorrow",
		Datetime: today.AddDate(0, 0, 1),
	})

	got := TodayAppointments(appointments, today, 6)
	require.Len(t, got, 6)
	// First six in list order.
	assert.Equal(t, appointments[0].ID, got[0].ID)
	assert.Equal(t, appointments[5].ID, got[5].ID)
}

func TestLowStockOverSeededDataset(t *testing.T) {
	medicines := seed.Medicines()
	// Seeded stocks are 20,25,30,35,40.
	assert.Equal(t, 0, LowStock(medicines, 10))
}

func TestLowStockIsStrict(t *testing.T) {
	medicines := []*model.Medicine{
		{ID: "M-1", Stock: 9},
		{ID: "M-2", Stock: 10},
		{ID: "M-3", Stock: 0},
	}
	assert.Equal(t, 2, LowStock(medicines, 10))
}
