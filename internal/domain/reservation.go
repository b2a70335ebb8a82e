package domain

import "time"

// Reservation represents a single venue reservation record.
// Records are never mutated in place: they are created by a booking
// submission and destroyed by an explicit delete.
type Reservation struct {
	ID          int64  // stable store identity (serial row id or 1-based row position)
	Category    string // optional grouping ("sports", "cultural", ...); empty in single-category deployments
	EventType   string // optional free-form sub-classification within a category
	Venue       string // resolved venue name, non-empty
	Date        string // ISO date YYYY-MM-DD, kept exactly as submitted
	TimeSlot    string // one of the fixed TimeSlots catalog
	RequestedBy string // requester identity, non-empty
	CreatedAt   time.Time
}

// ParsedDate parses the reservation date. Records with malformed dates
// remain in the store but are excluded from date-keyed views and from
// weekday-based closure policy.
func (r *Reservation) ParsedDate() (time.Time, bool) {
	t, err := time.Parse(DateFormat, r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ClashesWith reports whether this reservation occupies the exact
// (venue, date, slot) triple. Comparison is an exact string match:
// venue and slot values are catalog-driven, so case differences and
// stray whitespace are deliberately significant here.
func (r *Reservation) ClashesWith(venue, date, timeSlot string) bool {
	return r.Venue == venue && r.Date == date && r.TimeSlot == timeSlot
}
