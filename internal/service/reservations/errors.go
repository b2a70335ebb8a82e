package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда позиция вне диапазона
	// или запись уже удалена
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
