package get_calendar

import (
	"github.com/dmukh/SPJ-VenueService/internal/calendar"
)

// DayEntryModel одно бронирование в ячейке дня
type DayEntryModel struct {
	Venue       string `json:"venue"`
	TimeSlot    string `json:"time_slot"`
	RequestedBy string `json:"requested_by"`
	EventType   string `json:"event_type,omitempty"`
	Category    string `json:"category,omitempty"`
}

// DayCellModel ячейка дня в сетке месяца
// Пустые ведущие и замыкающие ячейки недели передаются как null
type DayCellModel struct {
	Day     int             `json:"day"`
	Holiday string          `json:"holiday,omitempty"`
	Entries []DayEntryModel `json:"entries"`
}

// GetCalendarResponse HTTP ответ с помесячной сеткой
// Недели начинаются с понедельника
type GetCalendarResponse struct {
	Year      int                `json:"year"`
	Month     int                `json:"month"`
	MonthName string             `json:"month_name"`
	Weeks     [][]*DayCellModel `json:"weeks"`
}

// FromMonthView конвертирует доменную сетку месяца в HTTP ответ
func FromMonthView(view calendar.MonthView) *GetCalendarResponse {
	resp := &GetCalendarResponse{
		Year:      view.Year,
		Month:     int(view.Month),
		MonthName: view.Month.String(),
		Weeks:     make([][]*DayCellModel, 0, len(view.Weeks)),
	}

	for _, week := range view.Weeks {
		row := make([]*DayCellModel, 7)
		for i, cell := range week {
			if cell.Day == 0 {
				continue
			}
			entries := make([]DayEntryModel, 0, len(cell.Entries))
			for _, e := range cell.Entries {
				entries = append(entries, DayEntryModel{
					Venue:       e.Venue,
					TimeSlot:    e.TimeSlot,
					RequestedBy: e.RequestedBy,
					EventType:   e.EventType,
					Category:    e.Category,
				})
			}
			row[i] = &DayCellModel{
				Day:     cell.Day,
				Holiday: cell.Holiday,
				Entries: entries,
			}
		}
		resp.Weeks = append(resp.Weeks, row)
	}

	return resp
}
