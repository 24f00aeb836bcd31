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
	"github.com/shopspring/decimal"

	createBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_bookings"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBooking/internal/inventory"
	"github.com/m04kA/SMC-HotelBooking/internal/notification"
	"github.com/m04kA/SMC-HotelBooking/internal/payment"
	"github.com/m04kA/SMC-HotelBooking/internal/pricing"
	bookingsService "github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
	bookRoomsUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/book_rooms"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/txmanager"
)

// ledgerSnapshot адаптирует леджер под интерфейс сборщика метрик
type ledgerSnapshot struct {
	ledger *inventory.Ledger
}

func (s ledgerSnapshot) Snapshot() map[string]int {
	snapshot := s.ledger.Snapshot()
	result := make(map[string]int, len(snapshot))
	for category, count := range snapshot {
		result[string(category)] = count
	}
	return result
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

	log.Info("Starting SMC-HotelBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.FromSQLDB(db))
	}

	// Леджер доступности: один экземпляр на процесс, создаётся на старте
	// с начальными остатками из конфигурации
	ledger := inventory.NewLedger(cfg.Inventory.Capacities())
	log.Info("Inventory ledger initialized (standard=%d, luxury=%d, apartment=%d)",
		cfg.Inventory.Standard, cfg.Inventory.Luxury, cfg.Inventory.Apartment)

	if cfg.Metrics.Enabled {
		metricsCollector.CollectLedger(ledgerSnapshot{ledger: ledger}, 15*time.Second, stopMetricsCh)
	}

	// Платёжный шлюз с фиксированным курсом конверсии
	eurRate, err := decimal.NewFromString(cfg.Payment.EURRate)
	if err != nil {
		log.Fatal("Invalid payment.eur_rate %q: %v", cfg.Payment.EURRate, err)
	}
	gateway := payment.NewGateway(eurRate, log)

	// Шина уведомлений и подписчики
	bus := notification.NewBus(log)
	bus.Subscribe(notification.NewEmailNotifier(log))
	bus.Subscribe(notification.NewSMSNotifier(log))
	if cfg.Metrics.Enabled {
		bus.Subscribe(notification.NewMetricsObserver(metricsCollector))
	}

	// Инициализируем use case и сервисы
	bookRoomsUseCase := bookRoomsUC.NewUseCase(
		ledger,
		pricing.NewEngine(),
		gateway,
		bus,
		bookingRepository,
		txMgr,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(bookRoomsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(ledger, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Создание группового бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований (опционально по статусу)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Текущая доступность номеров по категориям
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

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
