package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSlotConflict возвращается, когда (площадка, дата, слот) уже заняты
	ErrSlotConflict = errors.New("create_reservation: slot already reserved")

	// ErrVenueClosed возвращается, когда сработало правило закрытия площадки
	ErrVenueClosed = errors.New("create_reservation: venue closed by policy")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
