package create_reservation

import (
	"fmt"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// venue - уже разрешенное имя площадки
func validateRequest(req *Request, venue string) error {
	if venue == "" {
		return fmt.Errorf("%w: venue is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: time slot is required", ErrInvalidInput)
	}

	// Слот обязан быть из фиксированного каталога: проверка конфликтов
	// работает точным сравнением строк
	if !domain.IsValidTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.TimeSlot)
	}

	if req.RequestedBy == "" {
		return fmt.Errorf("%w: requester name is required", ErrInvalidInput)
	}

	return nil
}
