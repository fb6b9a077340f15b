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

	cartHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cart"
	checkoutHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/checkout"
	createBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_booking"
	createGuestHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_guest"
	getAvailableRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_bookings"
	getCategoriesHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_categories"
	getGuestsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_guests"
	getProductsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_products"
	getRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_rooms"
	searchActiveBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/search_active_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	guestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	productRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/product"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	transactionRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/transaction"
	bookingsService "github.com/m04kA/SMC-HotelService/internal/service/bookings"
	guestsService "github.com/m04kA/SMC-HotelService/internal/service/guests"
	posService "github.com/m04kA/SMC-HotelService/internal/service/pos"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	checkoutUC "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
	createBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
	updateBookingStatusUC "github.com/m04kA/SMC-HotelService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelService...")
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
		bookingRepository     *bookingRepo.Repository
		roomRepository        *roomRepo.Repository
		guestRepository       *guestRepo.Repository
		productRepository     *productRepo.Repository
		transactionRepository *transactionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		productRepository = productRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		productRepository = productRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		guestRepository,
		roomRepository,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)
	guestSvc := guestsService.NewService(guestRepository, log)
	posSvc := posService.NewService(
		productRepository,
		bookingRepository,
		guestRepository,
		roomRepository,
		cfg.POS.TaxRate,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		guestRepository,
		roomRepository,
		txMgr,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		log,
	)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(
		roomRepository,
		bookingRepository,
		log,
	)
	checkoutUseCase := checkoutUC.NewUseCase(
		posSvc,
		bookingRepository,
		transactionRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	createGuest := createGuestHandler.NewHandler(guestSvc, log)
	getGuests := getGuestsHandler.NewHandler(guestSvc, log)
	getCategories := getCategoriesHandler.NewHandler(posSvc, log)
	getProducts := getProductsHandler.NewHandler(posSvc, log)
	cart := cartHandler.NewHandler(posSvc, log)
	searchActiveBookings := searchActiveBookingsHandler.NewHandler(posSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Номера ---
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// --- Гости ---
	api.HandleFunc("/guests", createGuest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/guests", getGuests.Handle).Methods(http.MethodGet)

	// --- Кассовый терминал ---
	api.HandleFunc("/pos/categories", getCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pos/products", getProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pos/cart", cart.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/pos/cart", cart.HandleClear).Methods(http.MethodDelete)
	api.HandleFunc("/pos/cart/items", cart.HandleAddItem).Methods(http.MethodPost)
	api.HandleFunc("/pos/cart/items/{productId}", cart.HandleUpdateItem).Methods(http.MethodPatch)
	api.HandleFunc("/pos/cart/items/{productId}", cart.HandleRemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/pos/charge-targets", searchActiveBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pos/checkout", checkout.Handle).Methods(http.MethodPost)

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
