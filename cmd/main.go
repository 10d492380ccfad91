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

	blockSlotHandler "github.com/haruyasu/booking-service/internal/api/handlers/block_slot"
	createBookingHandler "github.com/haruyasu/booking-service/internal/api/handlers/create_booking"
	deleteReservationHandler "github.com/haruyasu/booking-service/internal/api/handlers/delete_reservation"
	getCalendarHandler "github.com/haruyasu/booking-service/internal/api/handlers/get_calendar"
	getStaffHandler "github.com/haruyasu/booking-service/internal/api/handlers/get_staff"
	getStaffReservationsHandler "github.com/haruyasu/booking-service/internal/api/handlers/get_staff_reservations"
	getStoresHandler "github.com/haruyasu/booking-service/internal/api/handlers/get_stores"
	"github.com/haruyasu/booking-service/internal/api/middleware"
	"github.com/haruyasu/booking-service/internal/config"
	"github.com/haruyasu/booking-service/internal/domain"
	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	reservationRepo "github.com/haruyasu/booking-service/internal/infra/storage/reservation"
	accountsClient "github.com/haruyasu/booking-service/internal/integrations/accounts"
	directoryService "github.com/haruyasu/booking-service/internal/service/directory"
	reservationsService "github.com/haruyasu/booking-service/internal/service/reservations"
	blockSlotUC "github.com/haruyasu/booking-service/internal/usecase/block_slot"
	buildCalendarUC "github.com/haruyasu/booking-service/internal/usecase/build_calendar"
	createReservationUC "github.com/haruyasu/booking-service/internal/usecase/create_reservation"
	"github.com/haruyasu/booking-service/pkg/dbmetrics"
	"github.com/haruyasu/booking-service/pkg/logger"
	"github.com/haruyasu/booking-service/pkg/metrics"
	"github.com/haruyasu/booking-service/pkg/simpletxmanager"
	"github.com/haruyasu/booking-service/pkg/txmanager"
)

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

	log.Info("Starting BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент сервиса аккаунтов
	accounts := accountsClient.NewClient(
		cfg.AccountsService.URL,
		time.Duration(cfg.AccountsService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AccountsService=%s timeout=%ds)",
		cfg.AccountsService.URL, cfg.AccountsService.Timeout)

	// Рабочие часы календаря
	window := domain.BusinessWindow{
		FirstHour:          cfg.BusinessWindow.FirstHour,
		LastHour:           cfg.BusinessWindow.LastHour,
		NormalizeWeekStart: cfg.BusinessWindow.NormalizeWeekStart,
	}
	log.Info("Business window configured: %02d:00 - %02d:00", window.FirstHour, window.LastHour)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		directoryRepository   *directoryRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		directoryRepository = directoryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		directoryRepository = directoryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	directorySvc := directoryService.NewService(directoryRepository, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		directoryRepository,
		accounts,
		log,
	)

	// Инициализируем use cases
	buildCalendarUseCase := buildCalendarUC.NewUseCase(
		directoryRepository,
		reservationRepository,
		window,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		directoryRepository,
		reservationRepository,
		window,
		txMgr,
		log,
	)

	blockSlotUseCase := blockSlotUC.NewUseCase(
		directoryRepository,
		reservationRepository,
		accounts,
		window,
		log,
	)

	// Инициализируем handlers
	getStores := getStoresHandler.NewHandler(directorySvc, log)
	getStaff := getStaffHandler.NewHandler(directorySvc, log)
	getCalendar := getCalendarHandler.NewHandler(buildCalendarUseCase, log)
	createBooking := createBookingHandler.NewHandler(createReservationUseCase, log)
	blockSlot := blockSlotHandler.NewHandler(blockSlotUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getStaffReservations := getStaffReservationsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID для сквозной трассировки запросов
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список салонов
	api.HandleFunc("/stores", getStores.Handle).Methods(http.MethodGet)

	// Список сотрудников салона
	api.HandleFunc("/stores/{storeId}/staff", getStaff.Handle).Methods(http.MethodGet)

	// Недельный календарь сотрудника
	api.HandleFunc("/staff/{staffId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Бронирование слота клиентом
	api.HandleFunc("/staff/{staffId}/reservations", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Блокировка слота сотрудником
	protected.HandleFunc("/staff/{staffId}/blocks", blockSlot.Handle).Methods(http.MethodPost)

	// Будущие записи сотрудника
	protected.HandleFunc("/staff/{staffId}/reservations", getStaffReservations.Handle).Methods(http.MethodGet)

	// Удаление записи
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
