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

	advanceStatusHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/advance_status"
	cancelBookingHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/create_booking"
	editServiceRecordHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/edit_service_record"
	getAvailableGroomersHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/get_available_groomers"
	getAvailableSlotsHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/get_booking"
	getDailyScheduleHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/get_daily_schedule"
	getQueueEntriesHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/get_queue_entries"
	getServiceRecordsHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/get_service_records"
	getSettingsHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/get_settings"
	updateBookingHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/update_booking"
	updateDailyScheduleHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/update_daily_schedule"
	updateSettingsHandler "github.com/m04kA/PGS-QueueService/internal/api/handlers/update_settings"
	"github.com/m04kA/PGS-QueueService/internal/api/middleware"
	"github.com/m04kA/PGS-QueueService/internal/config"
	customersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/customers"
	groomersRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/groomers"
	petsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/pets"
	queueRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/queue"
	recordsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/records"
	schedulesRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/schedules"
	settingsRepo "github.com/m04kA/PGS-QueueService/internal/infra/storage/settings"
	queueService "github.com/m04kA/PGS-QueueService/internal/service/queue"
	recordsService "github.com/m04kA/PGS-QueueService/internal/service/records"
	scheduleService "github.com/m04kA/PGS-QueueService/internal/service/schedule"
	settingsService "github.com/m04kA/PGS-QueueService/internal/service/settings"
	advanceStatusUC "github.com/m04kA/PGS-QueueService/internal/usecase/advance_status"
	createBookingUC "github.com/m04kA/PGS-QueueService/internal/usecase/create_booking"
	getAvailableGroomersUC "github.com/m04kA/PGS-QueueService/internal/usecase/get_available_groomers"
	getAvailableSlotsUC "github.com/m04kA/PGS-QueueService/internal/usecase/get_available_slots"
	"github.com/m04kA/PGS-QueueService/pkg/dbmetrics"
	"github.com/m04kA/PGS-QueueService/pkg/logger"
	"github.com/m04kA/PGS-QueueService/pkg/metrics"
	"github.com/m04kA/PGS-QueueService/pkg/simpletxmanager"
	"github.com/m04kA/PGS-QueueService/pkg/txmanager"
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

	log.Info("Starting PGS-QueueService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		queueRepository     *queueRepo.Repository
		customersRepository *customersRepo.Repository
		petsRepository      *petsRepo.Repository
		groomersRepository  *groomersRepo.Repository
		schedulesRepository *schedulesRepo.Repository
		recordsRepository   *recordsRepo.Repository
		settingsRepository  *settingsRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		queueRepository = queueRepo.NewRepository(wrappedDB)
		customersRepository = customersRepo.NewRepository(wrappedDB)
		petsRepository = petsRepo.NewRepository(wrappedDB)
		groomersRepository = groomersRepo.NewRepository(wrappedDB)
		schedulesRepository = schedulesRepo.NewRepository(wrappedDB)
		recordsRepository = recordsRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		queueRepository = queueRepo.NewRepository(db)
		customersRepository = customersRepo.NewRepository(db)
		petsRepository = petsRepo.NewRepository(db)
		groomersRepository = groomersRepo.NewRepository(db)
		schedulesRepository = schedulesRepo.NewRepository(db)
		recordsRepository = recordsRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	queueSvc := queueService.NewService(
		queueRepository,
		settingsRepository,
		log,
	)
	recordsSvc := recordsService.NewService(recordsRepository, log)
	scheduleSvc := scheduleService.NewService(
		schedulesRepository,
		groomersRepository,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		queueRepository,
		customersRepository,
		petsRepository,
		groomersRepository,
		schedulesRepository,
		settingsRepository,
		txMgr,
		log,
	)

	advanceStatusUseCase := advanceStatusUC.NewUseCase(
		queueRepository,
		petsRepository,
		groomersRepository,
		customersRepository,
		recordsRepository,
		settingsRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		queueRepository,
		groomersRepository,
		schedulesRepository,
		settingsRepository,
		log,
	)

	getAvailableGroomersUseCase := getAvailableGroomersUC.NewUseCase(
		queueRepository,
		groomersRepository,
		schedulesRepository,
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	advanceStatus := advanceStatusHandler.NewHandler(advanceStatusUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableGroomers := getAvailableGroomersHandler.NewHandler(getAvailableGroomersUseCase, log)
	getBooking := getBookingHandler.NewHandler(queueSvc, log)
	getQueueEntries := getQueueEntriesHandler.NewHandler(queueSvc, log)
	updateBooking := updateBookingHandler.NewHandler(queueSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(queueSvc, log)
	getServiceRecords := getServiceRecordsHandler.NewHandler(recordsSvc, log)
	editServiceRecord := editServiceRecordHandler.NewHandler(recordsSvc, log)
	getDailySchedule := getDailyScheduleHandler.NewHandler(scheduleSvc, log)
	updateDailySchedule := updateDailyScheduleHandler.NewHandler(scheduleSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Поиск доступных слотов на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Доступные грумеры на дату и время
	api.HandleFunc("/groomers/available", getAvailableGroomers.Handle).Methods(http.MethodGet)

	// Текущие настройки магазина (длительности, прайс, рабочие часы)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Очередь ---
	// Создание записи в очереди
	protected.HandleFunc("/queue", createBooking.Handle).Methods(http.MethodPost)

	// Очередь на дату или история клиента
	protected.HandleFunc("/queue", getQueueEntries.Handle).Methods(http.MethodGet)

	// Получение записи очереди по ID
	protected.HandleFunc("/queue/{entryId}", getBooking.Handle).Methods(http.MethodGet)

	// Редактирование записи очереди
	protected.HandleFunc("/queue/{entryId}", updateBooking.Handle).Methods(http.MethodPut)

	// Перевод записи в следующий статус
	protected.HandleFunc("/queue/{entryId}/status", advanceStatus.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/queue/{entryId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Сервисные записи ---
	protected.HandleFunc("/records", getServiceRecords.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/records/{recordId}", editServiceRecord.Handle).Methods(http.MethodPatch)

	// --- Расписания персонала ---
	protected.HandleFunc("/schedules/{date}", getDailySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{date}", updateDailySchedule.Handle).Methods(http.MethodPut)

	// --- Настройки магазина ---
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
