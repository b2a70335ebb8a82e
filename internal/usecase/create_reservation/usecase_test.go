package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
	"github.com/dmukh/SPJ-VenueService/internal/resolver"
	"github.com/dmukh/SPJ-VenueService/pkg/metrics"
	"github.com/dmukh/SPJ-VenueService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	reservations []*domain.Reservation
	nextID       int64
}

func (f *fakeRepo) List(ctx context.Context, category *string) ([]*domain.Reservation, error) {
	if category == nil {
		return f.reservations, nil
	}
	out := make([]*domain.Reservation, 0, len(f.reservations))
	for _, res := range f.reservations {
		if res.Category == *category {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeRepo) Insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	f.reservations = append(f.reservations, res)
	return res, nil
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	r := resolver.New()
	r.Register("sports", resolver.WeekdayVenueClosure(time.Monday, "Rec Centre", "Yoga Room"))

	return NewUseCase(repo, r, txmanager.NewSequential(), metrics.Noop{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		Category:    "sports",
		Venue:       domain.FixedVenue("Football Ground"),
		Date:        "2026-03-10",
		TimeSlot:    "10:00 AM - 12:00 PM",
		RequestedBy: "Football Club",
	}
}

func TestUseCase_Execute_CreatesReservation(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Football Ground", resp.Venue)
	assert.Equal(t, "2026-03-10", resp.Date)
	require.Len(t, repo.reservations, 1)
}

func TestUseCase_Execute_RejectsDuplicateSlot(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.RequestedBy = "Another Club"
	_, err = uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Contains(t, err.Error(),
		"Football Ground is already reserved for 2026-03-10 during 10:00 AM - 12:00 PM")
	assert.Len(t, repo.reservations, 1)
}

func TestUseCase_Execute_AllowsOtherSlotSameDay(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.TimeSlot = "02:00 PM - 04:00 PM"
	_, err = uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, repo.reservations, 2)
}

func TestUseCase_Execute_RejectsClosedVenue(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	// 2026-03-09 - понедельник
	req := validRequest()
	req.Venue = domain.FixedVenue("Rec Centre")
	req.Date = "2026-03-09"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrVenueClosed)
	assert.Contains(t, err.Error(), "Rec Centre is closed on Mondays")
	assert.Empty(t, repo.reservations)
}

func TestUseCase_Execute_ClosureDoesNotApplyToOtherCategories(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Category = "cultural"
	req.Venue = domain.FixedVenue("Rec Centre")
	req.Date = "2026-03-09"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestUseCase_Execute_ConflictsScopedToCategory(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Та же площадка, дата и слот, но другая категория
	req := validRequest()
	req.Category = "cultural"
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.reservations, 2)
}

func TestUseCase_Execute_ResolvesCustomVenue(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Venue = domain.CustomVenue("  Rooftop Terrace  ")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Rooftop Terrace", resp.Venue)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty venue", func(r *Request) { r.Venue = domain.FixedVenue("") }},
		{"whitespace custom venue", func(r *Request) { r.Venue = domain.CustomVenue("   ") }},
		{"empty date", func(r *Request) { r.Date = "" }},
		{"empty slot", func(r *Request) { r.TimeSlot = "" }},
		{"unknown slot", func(r *Request) { r.TimeSlot = "09:00 AM - 11:00 AM" }},
		{"empty requester", func(r *Request) { r.RequestedBy = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUseCase(repo)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.reservations)
		})
	}
}
