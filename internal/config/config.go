package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// Поддерживаемые backend-ы хранилища
const (
	StorageBackendCSV      = "csv"
	StorageBackendPostgres = "postgres"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Storage StorageConfig `toml:"storage"`
	Metrics MetricsConfig `toml:"metrics"`
	Booking BookingConfig `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StorageConfig настройки хранилища бронирований
// Backend выбирает между файловым CSV-хранилищем и postgres
type StorageConfig struct {
	Backend  string         `toml:"backend"`
	CSVPath  string         `toml:"csv_path"`
	Database DatabaseConfig `toml:"database"`
}

// DatabaseConfig настройки подключения к postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к postgres
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig доменная конфигурация: категории и праздники
// Передается в компоненты при сборке, глобального состояния нет
type BookingConfig struct {
	Categories map[string]CategoryConfig `toml:"categories"`
	Holidays   []Holiday                 `toml:"holidays"`

	// Получатели по умолчанию для деплоя без категорий
	DefaultRecipients []string `toml:"default_recipients"`
}

// CategoryConfig конфигурация одной категории площадок
type CategoryConfig struct {
	Venues     []string `toml:"venues"`
	Recipients []string `toml:"recipients"`
	DraftStyle string   `toml:"draft_style"`
}

// Holiday праздничная дата, используется только для отображения в календаре
type Holiday struct {
	Date  string `toml:"date"` // YYYY-MM-DD
	Label string `toml:"label"`
}

// HolidayTable возвращает праздники в виде таблицы дата -> название
func (b *BookingConfig) HolidayTable() map[string]string {
	table := make(map[string]string, len(b.Holidays))
	for _, h := range b.Holidays {
		table[h.Date] = h.Label
	}
	return table
}

// Load загружает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Backend: StorageBackendCSV,
			CSVPath: "bookings.csv",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue-service",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageBackendCSV:
		if c.Storage.CSVPath == "" {
			return fmt.Errorf("config: storage.csv_path is required for the csv backend")
		}
	case StorageBackendPostgres:
		if c.Storage.Database.Host == "" || c.Storage.Database.DBName == "" {
			return fmt.Errorf("config: storage.database host and dbname are required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	for name, cat := range c.Booking.Categories {
		if cat.DraftStyle == "" {
			continue
		}
		if !domain.IsValidDraftStyle(domain.DraftStyle(cat.DraftStyle)) {
			return fmt.Errorf("config: category %q has unknown draft_style %q", name, cat.DraftStyle)
		}
	}

	return nil
}
