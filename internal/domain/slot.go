package domain

// TimeSlots is the fixed ordered catalog of bookable windows: eight
// two-hour slots covering 08:00-24:00. A slot is the atomic bookable
// unit per venue per day.
var TimeSlots = []string{
	"08:00 AM - 10:00 AM",
	"10:00 AM - 12:00 PM",
	"12:00 PM - 02:00 PM",
	"02:00 PM - 04:00 PM",
	"04:00 PM - 06:00 PM",
	"06:00 PM - 08:00 PM",
	"08:00 PM - 10:00 PM",
	"10:00 PM - 12:00 AM",
}

// IsValidTimeSlot reports whether s is a member of the slot catalog.
// Matching is exact, there is no normalization of case or whitespace.
func IsValidTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}
