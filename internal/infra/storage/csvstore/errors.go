package csvstore

import (
	"errors"

	"github.com/dmukh/SPJ-VenueService/internal/infra/storage"
)

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	// Общий sentinel для всех backend-ов хранилища
	ErrReservationNotFound = storage.ErrReservationNotFound

	// ErrLoad возвращается при ошибке чтения файла бронирований
	ErrLoad = errors.New("reservation.csvstore: failed to load bookings file")

	// ErrPersist возвращается, когда запись не удалось надежно сохранить
	ErrPersist = errors.New("reservation.csvstore: failed to persist bookings file")
)
