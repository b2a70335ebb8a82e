package calendar

import (
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// DayEntry одна запись в ячейке дня: срез полей бронирования,
// достаточный для отображения
type DayEntry struct {
	Venue       string
	TimeSlot    string
	RequestedBy string
	EventType   string
	Category    string
}

// DayCell ячейка сетки месяца
// Day == 0 означает пустую ячейку-заполнитель вне месяца
type DayCell struct {
	Day     int
	Holiday string // название праздника, только для отображения
	Entries []DayEntry
}

// Week одна строка сетки, всегда 7 ячеек, неделя начинается с понедельника
type Week [7]DayCell

// MonthView сетка месяца с бронированиями, разложенными по дням
type MonthView struct {
	Year  int
	Month time.Month
	Weeks []Week
}

// Aggregator строит помесячное представление плоского списка бронирований
// Таблица праздников неизменяема и передается при создании
type Aggregator struct {
	holidays map[string]string // ISO дата -> название
}

// New создает агрегатор с таблицей праздников (может быть nil)
func New(holidays map[string]string) *Aggregator {
	return &Aggregator{holidays: holidays}
}

// BuildMonth строит сетку месяца и раскладывает бронирования по дням
//
// Чистая функция от (year, month, reservations): повторный вызов с теми же
// аргументами дает идентичный результат. Записи с нечитаемой датой молча
// пропускаются, порядок записей внутри дня повторяет порядок хранилища.
func (a *Aggregator) BuildMonth(year int, month time.Month, reservations []*domain.Reservation) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	// ISO индекс дня недели первого числа: понедельник = 0
	leading := (int(first.Weekday()) + 6) % 7
	weekCount := (leading + daysInMonth + 6) / 7

	buckets := make(map[int][]DayEntry)
	for _, res := range reservations {
		date, ok := res.ParsedDate()
		if !ok {
			continue
		}
		if date.Year() != year || date.Month() != month {
			continue
		}
		day := date.Day()
		buckets[day] = append(buckets[day], DayEntry{
			Venue:       res.Venue,
			TimeSlot:    res.TimeSlot,
			RequestedBy: res.RequestedBy,
			EventType:   res.EventType,
			Category:    res.Category,
		})
	}

	view := MonthView{
		Year:  year,
		Month: month,
		Weeks: make([]Week, weekCount),
	}

	day := 1
	for cell := leading; day <= daysInMonth; cell++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		view.Weeks[cell/7][cell%7] = DayCell{
			Day:     day,
			Holiday: a.holidays[date.Format(domain.DateFormat)],
			Entries: buckets[day],
		}
		day++
	}

	return view
}
