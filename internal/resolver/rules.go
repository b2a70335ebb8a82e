package resolver

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// ClosureRule предикат закрытия площадки на дату
// Возвращает причину отказа и признак закрытия
type ClosureRule func(venue string, date time.Time) (reason string, closed bool)

// WeekdayVenueClosure закрывает площадки, имя которых содержит один из
// маркеров, в указанный день недели. Используется для правила
// "по понедельникам рекреационные площадки закрыты"
func WeekdayVenueClosure(day time.Weekday, markers ...string) ClosureRule {
	return func(venue string, date time.Time) (string, bool) {
		if date.Weekday() != day {
			return "", false
		}
		for _, marker := range markers {
			if strings.Contains(venue, marker) {
				return fmt.Sprintf("%s is closed on %ss", venue, day), true
			}
		}
		return "", false
	}
}

// FixedDateClosure закрывает все площадки категории в перечисленные даты
// (ISO дата -> название). Пример дополнительного правила, подключаемого
// без изменения resolver
func FixedDateClosure(dates map[string]string) ClosureRule {
	return func(venue string, date time.Time) (string, bool) {
		label, ok := dates[date.Format(domain.DateFormat)]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s is closed on %s (%s)", venue, date.Format(domain.DateFormat), label), true
	}
}
