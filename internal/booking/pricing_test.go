package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you/badminton-portal/internal/catalog"
)

// 2025-06-10 is a Tuesday, 2025-06-14 a Saturday.
const (
	tuesday  = "2025-06-10"
	saturday = "2025-06-14"
	sunday   = "2025-06-15"
)

func stdCourt() *catalog.Court {
	return &catalog.Court{ID: "court-1", Name: "Court 1", PricePerHour: 100000}
}

func TestDurationHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{name: "two hours", start: "10:00", end: "12:00", want: 2},
		{name: "half hour", start: "10:00", end: "10:30", want: 0.5},
		{name: "ninety minutes", start: "18:30", end: "20:00", want: 1.5},
		{name: "end equals start", start: "10:00", end: "10:00", want: 0},
		{name: "end before start", start: "10:00", end: "09:00", want: 0},
		{name: "missing start", start: "", end: "12:00", want: 0},
		{name: "missing end", start: "10:00", end: "", want: 0},
		{name: "garbage", start: "ab:cd", end: "12:00", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationHours(tt.start, tt.end))
		})
	}
}

func TestSurchargeFor(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		startHour int
		want      int64
	}{
		{name: "weekday off-peak morning", date: tuesday, startHour: 10, want: 0},
		{name: "weekday peak start", date: tuesday, startHour: 17, want: PeakSurcharge},
		{name: "weekday peak last hour", date: tuesday, startHour: 20, want: PeakSurcharge},
		{name: "weekday peak window closed at 21", date: tuesday, startHour: 21, want: 0},
		{name: "saturday morning dominates peak rule", date: saturday, startHour: 10, want: WeekendSurcharge},
		{name: "saturday evening still weekend rate", date: saturday, startHour: 18, want: WeekendSurcharge},
		{name: "sunday", date: sunday, startHour: 9, want: WeekendSurcharge},
		{name: "bad date", date: "06/10/2025", startHour: 18, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SurchargeFor(tt.date, tt.startHour))
		})
	}
}

func TestPriceCourtScenarios(t *testing.T) {
	t.Run("saturday morning two hours", func(t *testing.T) {
		q := PriceCourt(saturday, "10:00", "12:00", stdCourt())
		assert.Equal(t, 2.0, q.DurationHours)
		assert.Equal(t, int64(150000), q.HourlyRate)
		assert.Equal(t, int64(300000), q.Total)
	})

	t.Run("tuesday peak hour", func(t *testing.T) {
		q := PriceCourt(tuesday, "18:00", "19:00", stdCourt())
		assert.Equal(t, 1.0, q.DurationHours)
		assert.Equal(t, int64(130000), q.HourlyRate)
		assert.Equal(t, int64(130000), q.Total)
	})

	t.Run("tuesday off-peak half slot", func(t *testing.T) {
		q := PriceCourt(tuesday, "10:00", "11:30", stdCourt())
		assert.Equal(t, 1.5, q.DurationHours)
		assert.Equal(t, int64(100000), q.HourlyRate)
		assert.Equal(t, int64(150000), q.Total)
	})

	t.Run("inverted window prices to zero", func(t *testing.T) {
		q := PriceCourt(tuesday, "10:00", "09:00", stdCourt())
		assert.Equal(t, Quote{}, q)
	})

	t.Run("missing inputs price to zero not error", func(t *testing.T) {
		assert.Equal(t, Quote{}, PriceCourt("", "10:00", "12:00", stdCourt()))
		assert.Equal(t, Quote{}, PriceCourt(tuesday, "", "12:00", stdCourt()))
		assert.Equal(t, Quote{}, PriceCourt(tuesday, "10:00", "12:00", nil))
	})

	t.Run("premium court uses its own base rate", func(t *testing.T) {
		prem := &catalog.Court{ID: "court-5", PricePerHour: 150000, Premium: true}
		q := PriceCourt(saturday, "10:00", "11:00", prem)
		assert.Equal(t, int64(200000), q.HourlyRate)
		assert.Equal(t, int64(200000), q.Total)
	})
}
