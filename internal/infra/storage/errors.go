// Package storage содержит ошибки, общие для всех backend-ов хранилища
// бронирований. Сервисный слой сравнивает ошибки через errors.Is, не зная,
// какой backend сконфигурирован.
package storage

import "errors"

// ErrReservationNotFound возвращается любым backend-ом, когда запись
// не найдена
var ErrReservationNotFound = errors.New("storage: reservation not found")
