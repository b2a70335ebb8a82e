package create_reservation

import (
	"time"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Category    string             // Категория площадки (опционально)
	EventType   string             // Тип события внутри категории (опционально)
	Venue       domain.VenueChoice // Выбор площадки: из каталога или ручной ввод
	Date        string             // Дата бронирования, YYYY-MM-DD
	TimeSlot    string             // Один из восьми фиксированных слотов
	RequestedBy string             // Имя заявителя / клуба
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Category    string
	EventType   string
	Venue       string // разрешенное имя площадки
	Date        string
	TimeSlot    string
	RequestedBy string
	CreatedAt   time.Time
}
