package drafts

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

var latestReservation = &domain.Reservation{
	ID:          7,
	Category:    "cultural",
	Venue:       "MLS Auditorium",
	Date:        "2026-03-10",
	TimeSlot:    "10:00 AM - 12:00 PM",
	RequestedBy: "Drama Club",
}

func TestCompose_NilReservationReturnsPlaceholder(t *testing.T) {
	draft := Compose(nil, domain.DraftStyleEmail, nil)

	assert.Equal(t, NoBookingsPlaceholder, draft)
}

func TestCompose_EmailDraft(t *testing.T) {
	recipients := []string{"admin.team@spjimr.org", "facilities@spjimr.org"}

	draft := Compose(latestReservation, domain.DraftStyleEmail, recipients)

	assert.True(t, strings.HasPrefix(draft, "Subject: Venue Reservation Request - MLS Auditorium\n"))
	assert.Contains(t, draft, "Dear Admin Team,")
	assert.Contains(t, draft, "reserve MLS Auditorium for an upcoming event")
	assert.Contains(t, draft, "- Date: 2026-03-10")
	assert.Contains(t, draft, "- Time Slot: 10:00 AM - 12:00 PM")
	assert.Contains(t, draft, "- Requested By: Drama Club")
	assert.Contains(t, draft, "Best regards,\n\nDrama Club")
	assert.Contains(t, draft, "SPJIMR Bhavan's Campus")
	assert.Contains(t, draft, "Recipients: admin.team@spjimr.org, facilities@spjimr.org")
}

func TestCompose_EmailSubjectCarriesEventType(t *testing.T) {
	res := *latestReservation
	res.EventType = "Annual Play"

	draft := Compose(&res, domain.DraftStyleEmail, nil)

	assert.True(t, strings.HasPrefix(draft,
		"Subject: [Annual Play] Venue Reservation Request - MLS Auditorium\n"))
}

func TestCompose_ChatDraft(t *testing.T) {
	draft := Compose(latestReservation, domain.DraftStyleChat, nil)

	assert.Equal(t,
		"Hey everyone! MLS Auditorium is booked on 2026-03-10 (10:00 AM - 12:00 PM) - come join us!",
		draft)
}

func TestGmailLink_FromEmailDraft(t *testing.T) {
	draft := Compose(latestReservation, domain.DraftStyleEmail, []string{"admin.team@spjimr.org"})

	link := GmailLink(draft)
	require.NotEmpty(t, link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mail.google.com", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "cm", query.Get("view"))
	assert.Equal(t, "1", query.Get("fs"))
	assert.Equal(t, "Venue Reservation Request - MLS Auditorium", query.Get("su"))
	assert.Contains(t, query.Get("body"), "Dear Admin Team,")
	assert.NotContains(t, query.Get("body"), "Subject:")
}

func TestGmailLink_EmptyForPlaceholderAndChat(t *testing.T) {
	assert.Empty(t, GmailLink(NoBookingsPlaceholder))
	assert.Empty(t, GmailLink(""))

	chat := Compose(latestReservation, domain.DraftStyleChat, nil)
	assert.Empty(t, GmailLink(chat))
}
