package booking

import (
	"math"
	"time"

	"github.com/you/badminton-portal/internal/catalog"
)

// Surcharge policy: added to the base hourly rate, never multiplied.
// Weekend dominates the weekday peak window when both could apply.
const (
	PeakSurcharge    int64 = 30000
	WeekendSurcharge int64 = 50000

	peakFromHour = 17
	peakToHour   = 21
)

const dateLayout = "2006-01-02"

// Quote is the derived price for one court selection. Zero value means
// "nothing priceable yet" and is what incomplete selections produce.
type Quote struct {
	DurationHours float64 `json:"duration_hours"`
	BaseRate      int64   `json:"base_rate"`
	Surcharge     int64   `json:"surcharge"`
	HourlyRate    int64   `json:"hourly_rate"`
	Total         int64   `json:"total"`
}

// DurationHours is (end - start) in hours, 0 for any pair that is
// missing, malformed, or with end <= start.
func DurationHours(start, end string) float64 {
	sm, ok := slotMinutes(start)
	if !ok {
		return 0
	}
	em, ok := slotMinutes(end)
	if !ok {
		return 0
	}
	if em <= sm {
		return 0
	}
	return float64(em-sm) / 60
}

// SurchargeFor evaluates the time-of-day / day-of-week policy. The day
// of week is taken in UTC so the answer cannot drift across the local
// day boundary.
func SurchargeFor(date string, startHour int) int64 {
	d, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return 0
	}
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return WeekendSurcharge
	}
	if startHour >= peakFromHour && startHour < peakToHour {
		return PeakSurcharge
	}
	return 0
}

// PriceCourt recomputes the quote from the current snapshot of
// {date, start, end, court}. Any missing piece prices to exactly zero.
func PriceCourt(date, start, end string, court *catalog.Court) Quote {
	if court == nil || date == "" {
		return Quote{}
	}
	hours := DurationHours(start, end)
	if hours <= 0 {
		return Quote{}
	}
	sm, _ := slotMinutes(start)
	sur := SurchargeFor(date, sm/60)
	rate := court.PricePerHour + sur
	return Quote{
		DurationHours: hours,
		BaseRate:      court.PricePerHour,
		Surcharge:     sur,
		HourlyRate:    rate,
		Total:         int64(math.Round(float64(rate) * hours)),
	}
}

func slotMinutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
