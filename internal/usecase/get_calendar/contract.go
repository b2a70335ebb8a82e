package get_calendar

import (
	"context"
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/calendar"
	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	List(ctx context.Context, category *string) ([]*domain.Reservation, error)
}

// CalendarAggregator интерфейс построения помесячного представления
type CalendarAggregator interface {
	BuildMonth(year int, month time.Month, reservations []*domain.Reservation) calendar.MonthView
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
