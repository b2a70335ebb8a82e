package models

import (
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// ListRequest запрос списка бронирований
type ListRequest struct {
	Category *string // опциональный фильтр по категории
}

// DeleteRequest запрос удаления по позиции в отображаемом списке
// Index - позиция с нуля внутри (опционально отфильтрованного) списка
type DeleteRequest struct {
	Index    int
	Category *string
}

// ReservationResponse одна запись бронирования в ответе сервиса
type ReservationResponse struct {
	ID          int64
	Category    string
	EventType   string
	Venue       string
	Date        string
	TimeSlot    string
	RequestedBy string
	CreatedAt   time.Time
}

// ListResponse список бронирований
type ListResponse struct {
	Reservations []ReservationResponse
}

// DeleteResponse данные удаленной записи для сообщения пользователю
type DeleteResponse struct {
	Venue string
	Date  string
}

// FromDomainReservation конвертирует доменную запись в модель сервиса
func FromDomainReservation(res *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          res.ID,
		Category:    res.Category,
		EventType:   res.EventType,
		Venue:       res.Venue,
		Date:        res.Date,
		TimeSlot:    res.TimeSlot,
		RequestedBy: res.RequestedBy,
		CreatedAt:   res.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных записей
func FromDomainReservationList(list []*domain.Reservation) *ListResponse {
	resp := &ListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}
	for _, res := range list {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(res))
	}
	return resp
}
