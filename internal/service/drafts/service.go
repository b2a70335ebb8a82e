package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
	"github.com/dmukh/SPJ-VenueService/internal/infra/storage"
)

// CategoryStyle стиль общения категории: тип черновика и список получателей
type CategoryStyle struct {
	Style      domain.DraftStyle
	Recipients []string
}

// Service сервис генерации черновиков по последнему бронированию
// Таблица стилей категорий неизменяема и передается при создании
type Service struct {
	repo         ReservationRepository
	styles       map[string]CategoryStyle
	defaultStyle CategoryStyle
	logger       Logger
}

// NewService создает новый экземпляр сервиса
// defaultStyle используется для деплоя без категорий и для неизвестных категорий
func NewService(
	repo ReservationRepository,
	styles map[string]CategoryStyle,
	defaultStyle CategoryStyle,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		styles:       styles,
		defaultStyle: defaultStyle,
		logger:       logger,
	}
}

// Result черновик и сопутствующая ссылка на Gmail
type Result struct {
	Draft    string
	GmailURL string
}

// Generate строит черновик по последнему бронированию
// Отсутствие бронирований - не ошибка: возвращается фиксированный placeholder
func (s *Service) Generate(ctx context.Context, category *string) (*Result, error) {
	latest, err := s.repo.GetLatest(ctx, category)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.logger.Info("Generate: no reservations yet, returning placeholder")
			return &Result{Draft: NoBookingsPlaceholder}, nil
		}
		s.logger.Error("Generate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	style := s.defaultStyle
	if cs, ok := s.styles[latest.Category]; ok {
		style = cs
	}

	draft := Compose(latest, style.Style, style.Recipients)

	s.logger.Info("Generate: draft generated for reservation id=%d (style=%s)",
		latest.ID, style.Style)

	return &Result{
		Draft:    draft,
		GmailURL: GmailLink(draft),
	}, nil
}
