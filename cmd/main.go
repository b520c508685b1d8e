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

	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-LessonBooking/internal/api"
	cancelBookingHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/get_catalog"
	getInstructorHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/get_instructor"
	getInstructorBookingsHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/get_instructor_bookings"
	getMonthCalendarHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/get_month_calendar"
	getUpcomingBookingsHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/get_upcoming_bookings"
	listBookingsHandler "github.com/m04kA/SMC-LessonBooking/internal/api/handlers/list_bookings"
	"github.com/m04kA/SMC-LessonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-LessonBooking/internal/config"
	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-LessonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-LessonBooking/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-LessonBooking/internal/integrations/events"
	"github.com/m04kA/SMC-LessonBooking/internal/ledger"
	"github.com/m04kA/SMC-LessonBooking/internal/policy"
	bookingsService "github.com/m04kA/SMC-LessonBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-LessonBooking/internal/service/catalog"
	cancelBookingUC "github.com/m04kA/SMC-LessonBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-LessonBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-LessonBooking/internal/usecase/get_available_slots"
	getMonthCalendarUC "github.com/m04kA/SMC-LessonBooking/internal/usecase/get_month_calendar"
	"github.com/m04kA/SMC-LessonBooking/pkg/clock"
	"github.com/m04kA/SMC-LessonBooking/pkg/logger"
	"github.com/m04kA/SMC-LessonBooking/pkg/metrics"
	"github.com/m04kA/SMC-LessonBooking/pkg/txmanager"
)

// eventPublisher публикация событий бронирования (RabbitMQ или заглушка)
type eventPublisher interface {
	PublishBookingCreated(ctx context.Context, b domain.Booking) error
	PublishBookingCancelled(ctx context.Context, b domain.Booking) error
	Close() error
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

	log.Info("Starting SMC-LessonBooking...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	timeProvider := clock.Real{Location: loc}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем справочник
	catalog, err := catalogRepo.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded from %s: %d venues, %d courses, %d instructors",
		cfg.Catalog.Path, len(catalog.Venues), len(catalog.Courses), len(catalog.Instructors))

	// Подключаем хранилище списка бронирований
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	var store bookingRepo.SnapshotStore
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(startupCtx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		pgStore := snapshot.NewPostgresStore(db, cfg.Storage.Namespace, loc)
		if err := pgStore.EnsureSchema(startupCtx); err != nil {
			log.Fatal("Failed to prepare booking_snapshots table: %v", err)
		}
		store = pgStore
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(startupCtx).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		store = snapshot.NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.Storage.Namespace, loc)
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	default:
		store = snapshot.NewMemoryStore(loc)
		log.Warn("Using in-memory booking storage, bookings are lost on restart")
	}

	// Восстанавливаем леджер
	bookingRepository := bookingRepo.NewRepository(ledger.New(), store)
	loaded, skipped, err := bookingRepository.Load(startupCtx)
	if err != nil {
		log.Fatal("Failed to load bookings: %v", err)
	}
	for _, b := range skipped {
		log.Warn("Skipped stored booking id=%s: instructor=%s date=%s time=%s conflicts with an earlier record",
			b.ID, b.InstructorID, b.Date.Format(domain.DateFormat), b.StartTime)
	}
	metricsCollector.SetLiveBookings(loaded)
	log.Info("Loaded %d bookings (namespace=%s, driver=%s)", loaded, cfg.Storage.Namespace, cfg.Storage.Driver)

	// Публикация событий
	var publisher eventPublisher = events.Noop{}
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Booking events are published to exchange %s", cfg.Events.Exchange)
	}
	defer publisher.Close()

	// Инициализируем сервисы
	txMgr := txmanager.NewTransactionManager()
	bookingPolicy := policy.New(cfg.Booking.CancellationNotice())

	catalogSvc := catalogService.NewService(catalog, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogSvc,
		bookingPolicy,
		timeProvider,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		bookingPolicy,
		txMgr,
		publisher,
		metricsCollector,
		timeProvider,
		cfg.Booking.ProcessingDelay(),
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		bookingPolicy,
		txMgr,
		publisher,
		metricsCollector,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		timeProvider,
		log,
	)

	getMonthCalendarUseCase := getMonthCalendarUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		timeProvider,
		time.Weekday(cfg.Booking.FirstWeekday),
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMonthCalendar := getMonthCalendarHandler.NewHandler(getMonthCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getUpcomingBookings := getUpcomingBookingsHandler.NewHandler(bookingSvc, log)
	getInstructorBookings := getInstructorBookingsHandler.NewHandler(bookingSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getInstructor := getInstructorHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	routerOpts := api.RouterOptions{}
	if cfg.Metrics.Enabled {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.RateLimit.Enabled {
		routerOpts.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
		log.Info("Rate limit enabled: %d requests per minute per IP", cfg.RateLimit.RequestsPerMinute)
	}

	r := api.NewRouter(api.Routes{
		GetCatalog:            getCatalog.Handle,
		GetInstructor:         getInstructor.Handle,
		GetAvailableSlots:     getAvailableSlots.Handle,
		GetMonthCalendar:      getMonthCalendar.Handle,
		GetInstructorBookings: getInstructorBookings.Handle,
		ListBookings:          listBookings.Handle,
		GetUpcomingBookings:   getUpcomingBookings.Handle,
		GetBooking:            getBooking.Handle,
		CreateBooking:         createBooking.Handle,
		CancelBooking:         cancelBooking.Handle,
	}, routerOpts)

	// CORS для браузерного клиента
	handler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUserName, middleware.HeaderUserEmail},
		MaxAge:         300,
	})(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
