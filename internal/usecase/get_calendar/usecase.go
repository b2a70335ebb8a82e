package get_calendar

import (
	"context"
	"fmt"
)

// UseCase use case получения помесячного представления бронирований
type UseCase struct {
	repo       ReservationRepository
	aggregator CalendarAggregator
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ReservationRepository,
	aggregator CalendarAggregator,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:       repo,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Execute выполняет use case построения календаря
// Агрегатор - чистая функция, usecase только снабжает его данными хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: year=%d, month=%d", req.Year, req.Month)

	if req.Month < 1 || req.Month > 12 {
		uc.logger.Warn("GetCalendar: invalid month %d", req.Month)
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Year < 1970 || req.Year > 9999 {
		uc.logger.Warn("GetCalendar: invalid year %d", req.Year)
		return nil, fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}

	reservations, err := uc.repo.List(ctx, req.Category)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	view := uc.aggregator.BuildMonth(req.Year, req.Month, reservations)

	uc.logger.Info("GetCalendar: built view for %d-%02d with %d weeks",
		req.Year, req.Month, len(view.Weeks))

	return &Response{View: view}, nil
}
