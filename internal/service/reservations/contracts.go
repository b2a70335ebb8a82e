package reservations

import (
	"context"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	List(ctx context.Context, category *string) ([]*domain.Reservation, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
