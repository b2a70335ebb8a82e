package get_calendar

import (
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/calendar"
)

// Request модель запроса помесячного представления
type Request struct {
	Year     int
	Month    time.Month
	Category *string // опциональный фильтр по категории
}

// Response модель ответа с сеткой месяца
type Response struct {
	View calendar.MonthView
}
