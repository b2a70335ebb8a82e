package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/dmukh/SPJ-VenueService/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	lastRequest *createReservation.Request
	response    *createReservation.Response
	err         error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"category": "cultural",
	"venue": "MLS Auditorium",
	"date": "2026-03-10",
	"time_slot": "10:00 AM - 12:00 PM",
	"requested_by": "Drama Club"
}`

func TestHandler_CreatesReservation(t *testing.T) {
	uc := &fakeUseCase{response: &createReservation.Response{
		ID:          1,
		Category:    "cultural",
		Venue:       "MLS Auditorium",
		Date:        "2026-03-10",
		TimeSlot:    "10:00 AM - 12:00 PM",
		RequestedBy: "Drama Club",
		CreatedAt:   time.Now(),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Confirmed: Slot secured for MLS Auditorium on 2026-03-10.", resp.Message)
	assert.Equal(t, int64(1), resp.Reservation.ID)

	require.NotNil(t, uc.lastRequest)
	assert.False(t, uc.lastRequest.Venue.Custom)
	assert.Equal(t, "MLS Auditorium", uc.lastRequest.Venue.Name)
}

func TestHandler_ManualEntrySelectsCustomVenue(t *testing.T) {
	uc := &fakeUseCase{response: &createReservation.Response{
		ID:    2,
		Venue: "Rooftop Terrace",
		Date:  "2026-03-10",
	}}
	h := NewHandler(uc, nopLogger{})

	body := `{
		"venue": "Other (Manual Entry)",
		"custom_venue": "Rooftop Terrace",
		"date": "2026-03-10",
		"time_slot": "10:00 AM - 12:00 PM",
		"requested_by": "Drama Club"
	}`
	rec := post(t, h, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastRequest)
	assert.True(t, uc.lastRequest.Venue.Custom)
	assert.Equal(t, "Rooftop Terrace", uc.lastRequest.Venue.Name)
}

func TestHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name: "slot conflict",
			err: fmt.Errorf("%w: %s", createReservation.ErrSlotConflict,
				"MLS Auditorium is already reserved for 2026-03-10 during 10:00 AM - 12:00 PM"),
			wantStatus: http.StatusConflict,
			wantError:  "MLS Auditorium is already reserved for 2026-03-10 during 10:00 AM - 12:00 PM",
		},
		{
			name:       "venue closed",
			err:        fmt.Errorf("%w: %s", createReservation.ErrVenueClosed, "Rec Centre is closed on Mondays"),
			wantStatus: http.StatusConflict,
			wantError:  "Rec Centre is closed on Mondays",
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: %s", createReservation.ErrInvalidInput, "venue is required"),
			wantStatus: http.StatusBadRequest,
			wantError:  "venue is required",
		},
		{
			name:       "internal error",
			err:        fmt.Errorf("%w: boom", createReservation.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := post(t, h, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestHandler_RejectsMalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := post(t, h, `{"venue": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
