package create_reservation

import (
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
	createReservation "github.com/dmukh/SPJ-VenueService/internal/usecase/create_reservation"
)

// ManualEntryOption значение селектора площадки, переключающее ручной ввод
const ManualEntryOption = "Other (Manual Entry)"

// CreateReservationRequest HTTP запрос создания бронирования
//
// Venue - выбор из каталога категории либо ManualEntryOption;
// во втором случае имя площадки берется из CustomVenue
type CreateReservationRequest struct {
	Category    string `json:"category,omitempty"`
	EventType   string `json:"event_type,omitempty"`
	Venue       string `json:"venue"`
	CustomVenue string `json:"custom_venue,omitempty"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	RequestedBy string `json:"requested_by"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Разрешение селектора площадки происходит здесь, на границе API
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	venue := domain.FixedVenue(r.Venue)
	if r.Venue == ManualEntryOption {
		venue = domain.CustomVenue(r.CustomVenue)
	}

	return &createReservation.Request{
		Category:    r.Category,
		EventType:   r.EventType,
		Venue:       venue,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		RequestedBy: r.RequestedBy,
	}
}

// CreateReservationResponse HTTP ответ с созданным бронированием
type CreateReservationResponse struct {
	Message     string           `json:"message"`
	Reservation ReservationModel `json:"reservation"`
}

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

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createReservation.Response, message string) *CreateReservationResponse {
	return &CreateReservationResponse{
		Message: message,
		Reservation: ReservationModel{
			ID:          resp.ID,
			Category:    resp.Category,
			EventType:   resp.EventType,
			Venue:       resp.Venue,
			Date:        resp.Date,
			TimeSlot:    resp.TimeSlot,
			RequestedBy: resp.RequestedBy,
			CreatedAt:   resp.CreatedAt,
		},
	}
}
