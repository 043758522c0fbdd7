package booking

import "fmt"

// Facility opening window and booking granularity.
const (
	OpenHour    = 7
	CloseHour   = 22
	SlotMinutes = 30
)

// Slots returns the selectable times of day between opening and closing,
// "HH:MM" at 30-minute steps, closing time included as an end bound.
func Slots() []string {
	var out []string
	for h := OpenHour; h < CloseHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:%02d", h, SlotMinutes))
	}
	out = append(out, fmt.Sprintf("%02d:00", CloseHour))
	return out
}

// EndOptions returns the slots strictly after start. Fixed-width "HH:MM"
// strings order lexicographically, so plain comparison is enough.
func EndOptions(start string) []string {
	if !ValidSlot(start) {
		return nil
	}
	var out []string
	for _, s := range Slots() {
		if s > start {
			out = append(out, s)
		}
	}
	return out
}

func ValidSlot(s string) bool {
	for _, v := range Slots() {
		if v == s {
			return true
		}
	}
	return false
}
