package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/dmukh/SPJ-VenueService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/dmukh/SPJ-VenueService/internal/api/handlers/delete_reservation"
	getCalendarHandler "github.com/dmukh/SPJ-VenueService/internal/api/handlers/get_calendar"
	getDraftHandler "github.com/dmukh/SPJ-VenueService/internal/api/handlers/get_draft"
	listReservationsHandler "github.com/dmukh/SPJ-VenueService/internal/api/handlers/list_reservations"
	"github.com/dmukh/SPJ-VenueService/internal/api/middleware"
	"github.com/dmukh/SPJ-VenueService/internal/calendar"
	"github.com/dmukh/SPJ-VenueService/internal/config"
	"github.com/dmukh/SPJ-VenueService/internal/domain"
	"github.com/dmukh/SPJ-VenueService/internal/infra/storage/csvstore"
	reservationRepo "github.com/dmukh/SPJ-VenueService/internal/infra/storage/reservation"
	"github.com/dmukh/SPJ-VenueService/internal/resolver"
	draftsService "github.com/dmukh/SPJ-VenueService/internal/service/drafts"
	reservationsService "github.com/dmukh/SPJ-VenueService/internal/service/reservations"
	createReservationUC "github.com/dmukh/SPJ-VenueService/internal/usecase/create_reservation"
	getCalendarUC "github.com/dmukh/SPJ-VenueService/internal/usecase/get_calendar"
	"github.com/dmukh/SPJ-VenueService/pkg/logger"
	"github.com/dmukh/SPJ-VenueService/pkg/metrics"
	"github.com/dmukh/SPJ-VenueService/pkg/txmanager"
)

// reservationStore общий контракт обоих backend-ов хранилища
type reservationStore interface {
	List(ctx context.Context, category *string) ([]*domain.Reservation, error)
	Insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetLatest(ctx context.Context, category *string) (*domain.Reservation, error)
	DeleteByID(ctx context.Context, id int64) error
}

// transactionManager контракт сериализации "прочитать - решить - записать"
type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// reservationMetrics доменные счетчики, Noop при выключенных метриках
type reservationMetrics interface {
	IncReservationCreated()
	IncConflictRejection()
	IncPolicyRejection()
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SPJ-VenueService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var domainMetrics reservationMetrics = metrics.Noop{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		domainMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище: файловое CSV или postgres
	var (
		store reservationStore
		txMgr transactionManager
	)

	switch cfg.Storage.Backend {
	case config.StorageBackendCSV:
		store = csvstore.New(cfg.Storage.CSVPath)
		// Файловое хранилище не умеет транзакции, конкурентные записи
		// сериализуются мьютексом процесса
		txMgr = txmanager.NewSequential()
		log.Info("Using csv storage backend (path=%s)", cfg.Storage.CSVPath)

	case config.StorageBackendPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Storage.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Storage.Database.Host, cfg.Storage.Database.Port, cfg.Storage.Database.DBName)

		store = reservationRepo.NewRepository(db)
		txMgr = txmanager.New(db)
		log.Info("Using postgres storage backend")
	}

	// Таблица правил закрытия площадок
	// Спортивные площадки с регулярным обслуживанием закрыты по понедельникам
	conflictResolver := resolver.New()
	conflictResolver.Register(domain.CategorySports,
		resolver.WeekdayVenueClosure(time.Monday, "Rec Centre", "Yoga Room"))

	// Агрегатор календаря с таблицей праздников из конфигурации
	monthAggregator := calendar.New(cfg.Booking.HolidayTable())

	// Таблица стилей черновиков по категориям
	draftStyles := make(map[string]draftsService.CategoryStyle, len(cfg.Booking.Categories))
	for name, cat := range cfg.Booking.Categories {
		style := domain.DraftStyleEmail
		if cat.DraftStyle != "" {
			style = domain.DraftStyle(cat.DraftStyle)
		}
		draftStyles[name] = draftsService.CategoryStyle{
			Style:      style,
			Recipients: cat.Recipients,
		}
	}
	defaultStyle := draftsService.CategoryStyle{
		Style:      domain.DraftStyleEmail,
		Recipients: cfg.Booking.DefaultRecipients,
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(store, log)
	draftsSvc := draftsService.NewService(store, draftStyles, defaultStyle, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		store,
		conflictResolver,
		txMgr,
		domainMetrics,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		store,
		monthAggregator,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{index}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Календарь ---
	api.HandleFunc("/calendar/{year}/{month}", getCalendar.Handle).Methods(http.MethodGet)

	// --- Черновик сообщения ---
	api.HandleFunc("/draft", getDraft.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
