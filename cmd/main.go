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

	borrowItemHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/borrow_item"
	cancelBookingHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/create_booking"
	createCustomerHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/create_customer"
	createItemHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/create_item"
	createSpaceHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/create_space"
	deleteBorrowRecordHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/delete_borrow_record"
	getBookingHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_booking"
	getCustomerHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_customer"
	getCustomerBookingsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_customer_bookings"
	getCustomerBorrowsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_customer_borrows"
	getItemHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_item"
	getSpaceHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_space"
	getSpaceBookingsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_space_bookings"
	returnItemHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/return_item"
	suggestRatesHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/suggest_rates"
	updateBookingHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/update_booking"
	updateCustomerHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/update_customer"
	updateItemHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/update_item"
	updateSpaceHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/update_space"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoworkingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	borrowRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/borrow"
	customerRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/customer"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/libraryitem"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	calendarClient "github.com/m04kA/SMC-CoworkingService/internal/integrations/calendarservice"
	bookingsService "github.com/m04kA/SMC-CoworkingService/internal/service/bookings"
	customersService "github.com/m04kA/SMC-CoworkingService/internal/service/customers"
	libraryService "github.com/m04kA/SMC-CoworkingService/internal/service/library"
	spacesService "github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
	borrowItemUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/borrow_item"
	confirmBookingUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/create_booking"
	updateBookingUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/logger"
	"github.com/m04kA/SMC-CoworkingService/pkg/metrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CoworkingService/pkg/txmanager"
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

	log.Info("Starting SMC-CoworkingService...")
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

	// Инициализируем клиента календарного сервиса
	calendar := calendarClient.NewClient(
		cfg.CalendarService.URL,
		time.Duration(cfg.CalendarService.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar client initialized (url=%s, timeout=%ds)",
		cfg.CalendarService.URL, cfg.CalendarService.Timeout)

	// Интерфейс менеджера транзакций, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		spaceRepository    *spaceRepo.Repository
		customerRepository *customerRepo.Repository
		itemRepository     *itemRepo.Repository
		borrowRepository   *borrowRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		itemRepository = itemRepo.NewRepository(wrappedDB)
		borrowRepository = borrowRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		spaceRepository = spaceRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		itemRepository = itemRepo.NewRepository(db)
		borrowRepository = borrowRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookings := bookingsService.NewService(bookingRepository, calendar, log)
	spaces := spacesService.NewService(spaceRepository, log)
	customers := customersService.NewService(customerRepository, log)
	library := libraryService.NewService(itemRepository, borrowRepository, txMgr, log)

	// Инициализируем use cases
	createBooking := createBookingUC.NewUseCase(bookingRepository, spaceRepository, customerRepository, txMgr, log)
	updateBooking := updateBookingUC.NewUseCase(bookingRepository, spaceRepository, calendar, txMgr, log)
	confirmBooking := confirmBookingUC.NewUseCase(bookingRepository, spaceRepository, customerRepository, calendar, log)
	borrowItem := borrowItemUC.NewUseCase(itemRepository, borrowRepository, customerRepository, txMgr, log)

	// Инициализируем handlers
	createBookingH := createBookingHandler.NewHandler(createBooking, log)
	updateBookingH := updateBookingHandler.NewHandler(updateBooking, log)
	confirmBookingH := confirmBookingHandler.NewHandler(confirmBooking, log)
	cancelBookingH := cancelBookingHandler.NewHandler(bookings, log)
	completeBookingH := completeBookingHandler.NewHandler(bookings, log)
	getBookingH := getBookingHandler.NewHandler(bookings, log)
	getCustomerBookingsH := getCustomerBookingsHandler.NewHandler(bookings, log)
	getSpaceBookingsH := getSpaceBookingsHandler.NewHandler(bookings, log)

	createSpaceH := createSpaceHandler.NewHandler(spaces, log)
	getSpaceH := getSpaceHandler.NewHandler(spaces, log)
	updateSpaceH := updateSpaceHandler.NewHandler(spaces, log)
	suggestRatesH := suggestRatesHandler.NewHandler(spaces, log)

	createCustomerH := createCustomerHandler.NewHandler(customers, log)
	getCustomerH := getCustomerHandler.NewHandler(customers, log)
	updateCustomerH := updateCustomerHandler.NewHandler(customers, log)

	createItemH := createItemHandler.NewHandler(library, log)
	getItemH := getItemHandler.NewHandler(library, log)
	updateItemH := updateItemHandler.NewHandler(library, log)
	borrowItemH := borrowItemHandler.NewHandler(borrowItem, log)
	returnItemH := returnItemHandler.NewHandler(library, log)
	deleteBorrowRecordH := deleteBorrowRecordHandler.NewHandler(library, log)
	getCustomerBorrowsH := getCustomerBorrowsHandler.NewHandler(library, log)

	// Настраиваем маршруты
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Защищенные маршруты: требуют X-User-ID
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBookingH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBookingH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBookingH.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBookingH.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBookingH.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBookingH.Handle).Methods(http.MethodPatch)

	// --- Пространства ---
	protected.HandleFunc("/spaces", createSpaceH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/spaces", getSpaceH.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/rates/suggestion", suggestRatesH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/{spaceId}", getSpaceH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/{spaceId}", updateSpaceH.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/spaces/{spaceId}", updateSpaceH.HandleDeactivate).Methods(http.MethodDelete)
	protected.HandleFunc("/spaces/{spaceId}/bookings", getSpaceBookingsH.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	protected.HandleFunc("/customers", createCustomerH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers", getCustomerH.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", getCustomerH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", updateCustomerH.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookingsH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}/borrows", getCustomerBorrowsH.Handle).Methods(http.MethodGet)

	// --- Библиотека оборудования ---
	protected.HandleFunc("/library/items", createItemH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/library/items", getItemH.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/library/items/{itemId}", getItemH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/library/items/{itemId}", updateItemH.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/library/items/{itemId}/condition", updateItemH.HandleSetCondition).Methods(http.MethodPatch)
	protected.HandleFunc("/library/items/{itemId}/history", getItemH.HandleHistory).Methods(http.MethodGet)
	protected.HandleFunc("/library/items/{itemId}/borrow", borrowItemH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/library/borrows/{recordId}/return", returnItemH.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/library/borrows/{recordId}", deleteBorrowRecordH.Handle).Methods(http.MethodDelete)

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
