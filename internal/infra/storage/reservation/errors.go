package reservation

import (
	"errors"

	"github.com/dmukh/SPJ-VenueService/internal/infra/storage"
)

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	// Общий sentinel для всех backend-ов хранилища
	ErrReservationNotFound = storage.ErrReservationNotFound

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
