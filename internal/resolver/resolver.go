package resolver

import (
	"fmt"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// Outcome результат оценки кандидата на бронирование
type Outcome int

const (
	// Accepted бронирование не конфликтует и не нарушает политик
	Accepted Outcome = iota
	// RejectedInvalid кандидат не прошел базовую валидацию (пустая площадка)
	RejectedInvalid
	// RejectedConflict точное совпадение (площадка, дата, слот) с существующей записью
	RejectedConflict
	// RejectedPolicy сработало правило закрытия площадки
	RejectedPolicy
)

// Decision решение по кандидату с человекочитаемой причиной отказа
type Decision struct {
	Outcome Outcome
	Reason  string
}

// Resolver проверяет кандидата на двойное бронирование и на правила
// закрытия площадок. Правила регистрируются по категориям при сборке
// сервиса, сам resolver их содержимого не знает
type Resolver struct {
	rules map[string][]ClosureRule
}

// New создает resolver без зарегистрированных правил
func New() *Resolver {
	return &Resolver{
		rules: make(map[string][]ClosureRule),
	}
}

// Register добавляет правило закрытия для категории
// Несколько правил одной категории проверяются в порядке регистрации
func (r *Resolver) Register(category string, rule ClosureRule) {
	r.rules[category] = append(r.rules[category], rule)
}

// Evaluate оценивает кандидата против текущего набора записей
//
// Порядок проверок:
//  1. валидация площадки (площадка уже разрешена из tagged choice вызывающим кодом)
//  2. правила закрытия категории (только если дата кандидата парсится)
//  3. линейный проход по ВСЕМ существующим записям: точное совпадение
//     (площадка, дата, слот) означает конфликт
//
// Пустой existing - легальный вход без конфликтов. Сравнение строк точное,
// без нормализации регистра и пробелов: значения приходят из каталогов.
func (r *Resolver) Evaluate(candidate *domain.Reservation, existing []*domain.Reservation) Decision {
	if candidate.Venue == "" {
		return Decision{
			Outcome: RejectedInvalid,
			Reason:  "venue is required",
		}
	}

	// Правила закрытия применимы только к парсящимся датам
	if date, ok := candidate.ParsedDate(); ok {
		for _, rule := range r.rules[candidate.Category] {
			if reason, closed := rule(candidate.Venue, date); closed {
				return Decision{
					Outcome: RejectedPolicy,
					Reason:  reason,
				}
			}
		}
	}

	for _, res := range existing {
		if res.ClashesWith(candidate.Venue, candidate.Date, candidate.TimeSlot) {
			return Decision{
				Outcome: RejectedConflict,
				Reason: fmt.Sprintf("%s is already reserved for %s during %s",
					candidate.Venue, candidate.Date, candidate.TimeSlot),
			}
		}
	}

	return Decision{Outcome: Accepted}
}
