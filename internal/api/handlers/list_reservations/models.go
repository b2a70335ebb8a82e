package list_reservations

import (
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/service/reservations/models"
)

// ReservationModel запись бронирования в HTTP ответе
type ReservationModel struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category,omitempty"`
	EventType   string    `json:"event_type,omitempty"`
	Venue       string    `json:"venue"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	RequestedBy string    `json:"requested_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListReservationsResponse HTTP ответ со списком бронирований
type ListReservationsResponse struct {
	Reservations []ReservationModel `json:"reservations"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP ответ
func FromServiceResponse(resp *models.ListResponse) *ListReservationsResponse {
	out := &ListReservationsResponse{
		Reservations: make([]ReservationModel, 0, len(resp.Reservations)),
	}
	for _, res := range resp.Reservations {
		out.Reservations = append(out.Reservations, ReservationModel{
			ID:          res.ID,
			Category:    res.Category,
			EventType:   res.EventType,
			Venue:       res.Venue,
			Date:        res.Date,
			TimeSlot:    res.TimeSlot,
			RequestedBy: res.RequestedBy,
			CreatedAt:   res.CreatedAt,
		})
	}
	return out
}
