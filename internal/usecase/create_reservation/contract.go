package create_reservation

import (
	"context"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
	"github.com/dmukh/SPJ-VenueService/internal/resolver"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	List(ctx context.Context, category *string) ([]*domain.Reservation, error)
	Insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// ConflictResolver интерфейс оценки кандидата на бронирование
type ConflictResolver interface {
	Evaluate(candidate *domain.Reservation, existing []*domain.Reservation) resolver.Decision
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных счетчиков
type Metrics interface {
	IncReservationCreated()
	IncConflictRejection()
	IncPolicyRejection()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
