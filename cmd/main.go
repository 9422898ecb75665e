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
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/careconnect/booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/careconnect/booking-service/internal/api/handlers/delete_booking"
	exportBookingsHandler "github.com/careconnect/booking-service/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/careconnect/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/careconnect/booking-service/internal/api/handlers/get_booking"
	getScheduleConfigHandler "github.com/careconnect/booking-service/internal/api/handlers/get_schedule_config"
	getUserBookingsHandler "github.com/careconnect/booking-service/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/careconnect/booking-service/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/careconnect/booking-service/internal/api/handlers/update_booking_status"
	updateScheduleConfigHandler "github.com/careconnect/booking-service/internal/api/handlers/update_schedule_config"
	wizardHandler "github.com/careconnect/booking-service/internal/api/handlers/wizard"
	"github.com/careconnect/booking-service/internal/api/middleware"
	"github.com/careconnect/booking-service/internal/booking/wizard"
	"github.com/careconnect/booking-service/internal/config"
	"github.com/careconnect/booking-service/internal/domain"
	bookingRepo "github.com/careconnect/booking-service/internal/infra/storage/bookings"
	"github.com/careconnect/booking-service/internal/infra/storage/kv"
	scheduleRepo "github.com/careconnect/booking-service/internal/infra/storage/schedule"
	userServiceClient "github.com/careconnect/booking-service/internal/integrations/userservice"
	"github.com/careconnect/booking-service/internal/notifications"
	bookingsService "github.com/careconnect/booking-service/internal/service/bookings"
	scheduleService "github.com/careconnect/booking-service/internal/service/schedule"
	createBookingUC "github.com/careconnect/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/careconnect/booking-service/internal/usecase/get_available_slots"
	updateBookingStatusUC "github.com/careconnect/booking-service/internal/usecase/update_booking_status"
	"github.com/careconnect/booking-service/pkg/logger"
	"github.com/careconnect/booking-service/pkg/metrics"
	"github.com/careconnect/booking-service/pkg/types"
)

// wizardSessionTTL время жизни неактивной сессии wizard
const wizardSessionTTL = 30 * time.Minute

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

	log.Info("Starting careconnect booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем key-value хранилище по выбранному бэкенду
	var store kv.Store

	switch cfg.Storage.Backend {
	case "memory":
		store = kv.NewMemoryStore()
		log.Info("Storage backend: memory (data is lost on restart)")

	case "file":
		fileStore, err := kv.NewFileStore(cfg.Storage.File.Dir)
		if err != nil {
			log.Fatal("Failed to initialize file storage at %s: %v", cfg.Storage.File.Dir, err)
		}
		store = fileStore
		log.Info("Storage backend: file (dir=%s)", cfg.Storage.File.Dir)

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Storage.Timeout)*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Storage.Redis.Addr, err)
		}
		cancel()
		defer client.Close()
		store = kv.NewRedisStore(client)
		log.Info("Storage backend: redis (addr=%s, db=%d)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)

	case "postgres":
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to open database connection: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		store = kv.NewPostgresStore(db)
		log.Info("Storage backend: postgres (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)

	default:
		log.Fatal("Unknown storage backend %q (expected memory, file, redis or postgres)", cfg.Storage.Backend)
	}

	if cfg.Metrics.Enabled {
		store = kv.WrapWithMetrics(store, metricsCollector)
		log.Info("Storage metrics collection enabled")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store)
	scheduleRepository := scheduleRepo.NewRepository(store, domain.ScheduleConfig{
		WorkingHoursStart:   types.TimeString(cfg.Schedule.DefaultWorkingHoursStart),
		WorkingHoursEnd:     types.TimeString(cfg.Schedule.DefaultWorkingHoursEnd),
		SlotDurationMinutes: cfg.Schedule.DefaultSlotDurationMinutes,
		MaxAdvanceDays:      cfg.Schedule.DefaultMaxAdvanceDays,
		NotificationAddress: cfg.Schedule.DefaultNotificationAddress,
	})

	// Инициализируем клиента сервиса пользователей
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("UserService client initialized (url=%s, timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем notification sink
	var sink notifications.Sink
	switch cfg.Notifications.Backend {
	case "rabbitmq":
		rabbitSink, err := notifications.NewRabbitMQSink(cfg.Notifications.AMQPURL, cfg.Notifications.Queue)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitSink.Close()
		sink = rabbitSink
		log.Info("Notifications backend: rabbitmq (queue=%s)", cfg.Notifications.Queue)

	case "log":
		sink = notifications.NewLogSink(log)
		log.Info("Notifications backend: log (messages are not delivered)")

	default:
		log.Fatal("Unknown notifications backend %q (expected rabbitmq or log)", cfg.Notifications.Backend)
	}

	var notificationsRecorder notifications.Recorder
	if cfg.Metrics.Enabled {
		notificationsRecorder = metricsCollector
	}
	dispatcher := notifications.NewDispatcher(
		sink,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
		notificationsRecorder,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	var createRecorder createBookingUC.Recorder
	if cfg.Metrics.Enabled {
		createRecorder = metricsCollector
	}
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		userClient,
		dispatcher,
		createRecorder,
		log,
	)

	var statusRecorder updateBookingStatusUC.Recorder
	if cfg.Metrics.Enabled {
		statusRecorder = metricsCollector
	}
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		userClient,
		dispatcher,
		statusRecorder,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, userClient, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, userClient, log)

	// Сессии wizard живут в памяти процесса
	wizardSessions := wizard.NewSessions(wizardSessionTTL)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)

	var wizardRecorder wizardHandler.Recorder
	if cfg.Metrics.Enabled {
		wizardRecorder = metricsCollector
	}
	bookingWizard := wizardHandler.NewHandler(
		wizardSessions,
		getAvailableSlotsUseCase,
		createBookingUseCase,
		wizardRecorder,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты на дату с признаком доступности
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущая конфигурация расписания
	api.HandleFunc("/schedule", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Wizard ---
	protected.HandleFunc("/wizard", bookingWizard.HandleStart).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}", bookingWizard.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/{sessionId}/slot", bookingWizard.HandleSelectSlot).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/details", bookingWizard.HandleEnterDetails).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/back", bookingWizard.HandleBack).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/reset", bookingWizard.HandleReset).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/submit", bookingWizard.HandleSubmit).Methods(http.MethodPost)

	// --- Расписание (администратор) ---
	protected.HandleFunc("/schedule", updateScheduleConfig.Handle).Methods(http.MethodPut)

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
