package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// Заголовок файла бронирований. Колонки Category и Type опциональны:
// файлы старого однокатегорийного формата читаются с пустыми значениями
var header = []string{"Category", "Type", "Venue", "Date", "Time Slot", "Requested By"}

// Store файловое CSV-хранилище бронирований
//
// Идентификатор записи - ее позиция в файле (с единицы). Позиция стабильна
// в пределах одного логического запроса: удаление переписывает файл целиком
// и перенумеровывает оставшиеся записи. Конкурентный доступ из нескольких
// процессов не поддерживается, внутри процесса операции сериализуются мьютексом
type Store struct {
	mu   sync.Mutex
	path string
}

// New создает хранилище поверх файла по указанному пути
// Файл создается лениво при первой записи
func New(path string) *Store {
	return &Store{path: path}
}

// List возвращает все бронирования в порядке файла
// Опционально ограничивает выборку категорией, сохраняя абсолютные ID
func (s *Store) List(ctx context.Context, category *string) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	if category == nil {
		return all, nil
	}

	filtered := make([]*domain.Reservation, 0, len(all))
	for _, res := range all {
		if res.Category == *category {
			filtered = append(filtered, res)
		}
	}
	return filtered, nil
}

// Insert дописывает новую запись и сохраняет файл целиком
// Запись получает ID, равный ее позиции в файле
func (s *Store) Insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	res.ID = int64(len(all) + 1)
	all = append(all, res)

	if err := s.persist(all); err != nil {
		return nil, err
	}

	return res, nil
}

// GetLatest возвращает последнюю запись файла
// Опционально ограничивает выборку категорией
func (s *Store) GetLatest(ctx context.Context, category *string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := len(all) - 1; i >= 0; i-- {
		if category == nil || all[i].Category == *category {
			return all[i], nil
		}
	}

	return nil, ErrReservationNotFound
}

// DeleteByID удаляет запись по позиции и переписывает файл
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	if id < 1 || id > int64(len(all)) {
		return ErrReservationNotFound
	}

	all = append(all[:id-1], all[id:]...)

	return s.persist(all)
}

// load читает файл целиком и нумерует записи по позиции
func (s *Store) load() ([]*domain.Reservation, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Reservation{}, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrLoad, s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, s.path, err)
	}

	if len(records) == 0 {
		return []*domain.Reservation{}, nil
	}

	// Колонки ищем по заголовку: старые файлы могут не содержать
	// опциональные Category и Type
	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	reservations := make([]*domain.Reservation, 0, len(records)-1)
	for n, row := range records[1:] {
		reservations = append(reservations, &domain.Reservation{
			ID:          int64(n + 1),
			Category:    field(row, "Category"),
			EventType:   field(row, "Type"),
			Venue:       field(row, "Venue"),
			Date:        field(row, "Date"),
			TimeSlot:    field(row, "Time Slot"),
			RequestedBy: field(row, "Requested By"),
		})
	}

	return reservations, nil
}

// persist переписывает файл атомарно: запись во временный файл и rename
func (s *Store) persist(reservations []*domain.Reservation) error {
	// Временный файл создаем рядом с целевым, чтобы rename был атомарным
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".bookings-*.csv")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrPersist, err)
	}
	tmpPath := tmp.Name()

	writer := csv.NewWriter(tmp)
	rows := [][]string{header}
	for _, res := range reservations {
		rows = append(rows, []string{
			res.Category,
			res.EventType,
			res.Venue,
			res.Date,
			res.TimeSlot,
			res.RequestedBy,
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write rows: %v", ErrPersist, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close temp file: %v", ErrPersist, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replace %s: %v", ErrPersist, s.path, err)
	}

	return nil
}
