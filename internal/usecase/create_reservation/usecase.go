package create_reservation

import (
	"context"
	"fmt"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
	"github.com/dmukh/SPJ-VenueService/internal/resolver"
	"github.com/dmukh/SPJ-VenueService/pkg/ptr"
)

// UseCase use case создания бронирования площадки
type UseCase struct {
	repo      ReservationRepository
	resolver  ConflictResolver
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ReservationRepository,
	conflictResolver ConflictResolver,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		resolver:  conflictResolver,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Последовательность "прочитать все - решить - записать" выполняется внутри
// DoSerializable: для postgres это сериализуемая транзакция с блокировкой
// строк, для файлового хранилища - мьютекс процесса. Без этого два
// конкурентных запроса на один (площадка, дата, слот) могут оба пройти
// проверку конфликта до того, как кто-то из них запишет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разрешаем выбор площадки в обычную строку
	venue := req.Venue.Resolve()

	uc.logger.Info("CreateReservation: category=%s, venue=%s, date=%s, slot=%s, requested_by=%s",
		req.Category, venue, req.Date, req.TimeSlot, req.RequestedBy)

	// 2. Валидация входных данных
	if err := validateRequest(req, venue); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	candidate := &domain.Reservation{
		Category:    req.Category,
		EventType:   req.EventType,
		Venue:       venue,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		RequestedBy: req.RequestedBy,
	}

	// Конфликты проверяем внутри категории, если категории используются
	var categoryFilter *string
	if req.Category != "" {
		categoryFilter = ptr.Ptr(req.Category)
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Читаем ВСЕ существующие записи (в рамках категории)
		existing, err := uc.repo.List(txCtx, categoryFilter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 4. Оцениваем кандидата
		decision := uc.resolver.Evaluate(candidate, existing)
		switch decision.Outcome {
		case resolver.RejectedInvalid:
			uc.logger.Warn("CreateReservation: rejected by validation: %s", decision.Reason)
			return fmt.Errorf("%w: %s", ErrInvalidInput, decision.Reason)

		case resolver.RejectedPolicy:
			uc.logger.Warn("CreateReservation: rejected by closure policy: %s", decision.Reason)
			uc.metrics.IncPolicyRejection()
			return fmt.Errorf("%w: %s", ErrVenueClosed, decision.Reason)

		case resolver.RejectedConflict:
			uc.logger.Warn("CreateReservation: rejected by conflict: %s", decision.Reason)
			uc.metrics.IncConflictRejection()
			return fmt.Errorf("%w: %s", ErrSlotConflict, decision.Reason)
		}

		// 5. Сохраняем бронирование
		created, err := uc.repo.Insert(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to insert reservation: %v", err)
			return fmt.Errorf("%w: failed to insert reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		Category:    result.Category,
		EventType:   result.EventType,
		Venue:       result.Venue,
		Date:        result.Date,
		TimeSlot:    result.TimeSlot,
		RequestedBy: result.RequestedBy,
		CreatedAt:   result.CreatedAt,
	}, nil
}
