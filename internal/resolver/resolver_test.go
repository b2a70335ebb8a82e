package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

func reservation(venue, date, slot string) *domain.Reservation {
	return &domain.Reservation{
		Venue:       venue,
		Date:        date,
		TimeSlot:    slot,
		RequestedBy: "Drama Club",
	}
}

func TestResolver_Evaluate_AcceptsFreeSlot(t *testing.T) {
	r := New()

	existing := []*domain.Reservation{
		reservation("MLS Auditorium", "2026-03-10", "10:00 AM - 12:00 PM"),
	}
	candidate := reservation("MLS Auditorium", "2026-03-10", "02:00 PM - 04:00 PM")

	decision := r.Evaluate(candidate, existing)

	assert.Equal(t, Accepted, decision.Outcome)
	assert.Empty(t, decision.Reason)
}

func TestResolver_Evaluate_RejectsExactMatch(t *testing.T) {
	r := New()

	existing := []*domain.Reservation{
		reservation("MLS Auditorium", "2026-03-10", "10:00 AM - 12:00 PM"),
	}
	candidate := reservation("MLS Auditorium", "2026-03-10", "10:00 AM - 12:00 PM")

	decision := r.Evaluate(candidate, existing)

	require.Equal(t, RejectedConflict, decision.Outcome)
	assert.Equal(t,
		"MLS Auditorium is already reserved for 2026-03-10 during 10:00 AM - 12:00 PM",
		decision.Reason)
}

func TestResolver_Evaluate_SameVenueDifferentDate(t *testing.T) {
	r := New()

	existing := []*domain.Reservation{
		reservation("MLS Auditorium", "2026-03-10", "10:00 AM - 12:00 PM"),
	}
	candidate := reservation("MLS Auditorium", "2026-03-11", "10:00 AM - 12:00 PM")

	decision := r.Evaluate(candidate, existing)

	assert.Equal(t, Accepted, decision.Outcome)
}

func TestResolver_Evaluate_ComparisonIsCaseSensitive(t *testing.T) {
	r := New()

	existing := []*domain.Reservation{
		reservation("MLS Auditorium", "2026-03-10", "10:00 AM - 12:00 PM"),
	}

	// "mls auditorium" и "MLS Auditorium " считаются разными площадками
	for _, venue := range []string{"mls auditorium", "MLS Auditorium "} {
		candidate := reservation(venue, "2026-03-10", "10:00 AM - 12:00 PM")
		decision := r.Evaluate(candidate, existing)
		assert.Equal(t, Accepted, decision.Outcome, "venue %q", venue)
	}
}

func TestResolver_Evaluate_EmptyVenueRejected(t *testing.T) {
	r := New()

	candidate := reservation("", "2026-03-10", "10:00 AM - 12:00 PM")
	decision := r.Evaluate(candidate, nil)

	require.Equal(t, RejectedInvalid, decision.Outcome)
	assert.Equal(t, "venue is required", decision.Reason)
}

func TestResolver_Evaluate_WeekdayClosure(t *testing.T) {
	r := New()
	r.Register("sports", WeekdayVenueClosure(time.Monday, "Rec Centre", "Yoga Room"))

	// 2026-03-09 - понедельник
	tests := []struct {
		name    string
		venue   string
		date    string
		outcome Outcome
		reason  string
	}{
		{
			name:    "rec centre closed on monday",
			venue:   "Rec Centre",
			date:    "2026-03-09",
			outcome: RejectedPolicy,
			reason:  "Rec Centre is closed on Mondays",
		},
		{
			name:    "yoga room closed on monday",
			venue:   "Yoga Room",
			date:    "2026-03-09",
			outcome: RejectedPolicy,
			reason:  "Yoga Room is closed on Mondays",
		},
		{
			name:    "rec centre open on tuesday",
			venue:   "Rec Centre",
			date:    "2026-03-10",
			outcome: Accepted,
		},
		{
			name:    "other venue open on monday",
			venue:   "Football Ground",
			date:    "2026-03-09",
			outcome: Accepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := reservation(tt.venue, tt.date, "10:00 AM - 12:00 PM")
			candidate.Category = "sports"

			decision := r.Evaluate(candidate, nil)

			assert.Equal(t, tt.outcome, decision.Outcome)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, decision.Reason)
			}
		})
	}
}

func TestResolver_Evaluate_ClosureOnlyAppliesToRegisteredCategory(t *testing.T) {
	r := New()
	r.Register("sports", WeekdayVenueClosure(time.Monday, "Rec Centre"))

	candidate := reservation("Rec Centre", "2026-03-09", "10:00 AM - 12:00 PM")
	candidate.Category = "cultural"

	decision := r.Evaluate(candidate, nil)

	assert.Equal(t, Accepted, decision.Outcome)
}

func TestResolver_Evaluate_UnparseableDateSkipsClosureRules(t *testing.T) {
	r := New()
	r.Register("sports", WeekdayVenueClosure(time.Monday, "Rec Centre"))

	candidate := reservation("Rec Centre", "not-a-date", "10:00 AM - 12:00 PM")
	candidate.Category = "sports"

	// Правила закрытия работают только по распарсенной дате,
	// сравнение на конфликт остается посимвольным
	decision := r.Evaluate(candidate, nil)
	assert.Equal(t, Accepted, decision.Outcome)

	existing := []*domain.Reservation{
		reservation("Rec Centre", "not-a-date", "10:00 AM - 12:00 PM"),
	}
	decision = r.Evaluate(candidate, existing)
	assert.Equal(t, RejectedConflict, decision.Outcome)
}

func TestResolver_Evaluate_FixedDateClosure(t *testing.T) {
	r := New()
	r.Register("cultural", FixedDateClosure(map[string]string{
		"2026-03-04": "Holi",
	}))

	candidate := reservation("Amphitheatre", "2026-03-04", "10:00 AM - 12:00 PM")
	candidate.Category = "cultural"

	decision := r.Evaluate(candidate, nil)

	require.Equal(t, RejectedPolicy, decision.Outcome)
	assert.Equal(t, "Amphitheatre is closed on 2026-03-04 (Holi)", decision.Reason)
}
