package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmukh/SPJ-VenueService/internal/infra/storage"
	"github.com/dmukh/SPJ-VenueService/internal/service/reservations/models"
)

// Service сервис просмотра и удаления бронирований
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает бронирования в порядке хранилища
// Опционально ограничивает выборку категорией
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	reservations, err := s.repo.List(ctx, req.Category)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// DeleteAt удаляет запись по позиции в отображаемом списке
//
// Позиция считается внутри отфильтрованного представления, поэтому сервис
// заново читает список с тем же фильтром и отображает позицию на
// абсолютный идентификатор записи. Корректно в рамках однозапросной
// модели: между чтением и удалением нет конкурентных изменений
func (s *Service) DeleteAt(ctx context.Context, req *models.DeleteRequest) (*models.DeleteResponse, error) {
	if req.Index < 0 {
		s.logger.Warn("DeleteAt: negative index %d", req.Index)
		return nil, fmt.Errorf("%w: index must not be negative", ErrInvalidInput)
	}

	reservations, err := s.repo.List(ctx, req.Category)
	if err != nil {
		s.logger.Error("DeleteAt: repository error: %v", err)
		return nil, fmt.Errorf("%w: DeleteAt - repository error: %v", ErrInternal, err)
	}

	if req.Index >= len(reservations) {
		s.logger.Warn("DeleteAt: index %d out of range, list size %d", req.Index, len(reservations))
		return nil, ErrReservationNotFound
	}

	target := reservations[req.Index]

	if err := s.repo.DeleteByID(ctx, target.ID); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.logger.Warn("DeleteAt: reservation id=%d disappeared before delete", target.ID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("DeleteAt: repository error for id=%d: %v", target.ID, err)
		return nil, fmt.Errorf("%w: DeleteAt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAt: deleted reservation id=%d (venue=%s, date=%s)",
		target.ID, target.Venue, target.Date)

	return &models.DeleteResponse{
		Venue: target.Venue,
		Date:  target.Date,
	}, nil
}
