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

	assignCaregiverHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/assign_caregiver"
	cancelBookingHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/get_booking"
	getCaregiverBookingsHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/get_caregiver_bookings"
	getOwnerBookingsHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/get_owner_bookings"
	updateAvailabilityHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/pawspace/PetCare-BookingService/internal/api/handlers/update_booking_status"
	"github.com/pawspace/PetCare-BookingService/internal/api/middleware"
	"github.com/pawspace/PetCare-BookingService/internal/config"
	availabilityRepo "github.com/pawspace/PetCare-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/pawspace/PetCare-BookingService/internal/infra/storage/booking"
	caregiverServiceClient "github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	paymentServiceClient "github.com/pawspace/PetCare-BookingService/internal/integrations/paymentservice"
	petServiceClient "github.com/pawspace/PetCare-BookingService/internal/integrations/petservice"
	availabilityService "github.com/pawspace/PetCare-BookingService/internal/service/availability"
	bookingsService "github.com/pawspace/PetCare-BookingService/internal/service/bookings"
	createBookingUC "github.com/pawspace/PetCare-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/pawspace/PetCare-BookingService/internal/usecase/get_available_slots"
	"github.com/pawspace/PetCare-BookingService/pkg/dbmetrics"
	"github.com/pawspace/PetCare-BookingService/pkg/logger"
	"github.com/pawspace/PetCare-BookingService/pkg/metrics"
	"github.com/pawspace/PetCare-BookingService/pkg/simpletxmanager"
	"github.com/pawspace/PetCare-BookingService/pkg/txmanager"
)

// TxManager is the transaction surface shared by services and use cases.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PetCare-BookingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduling.Timezone, err)
	}

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	petClient := petServiceClient.NewClient(
		cfg.PetService.URL,
		time.Duration(cfg.PetService.Timeout)*time.Second,
		log,
	)
	caregiverClient := caregiverServiceClient.NewClient(
		cfg.CaregiverService.URL,
		time.Duration(cfg.CaregiverService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PetService=%s, CaregiverService=%s, PaymentService=%s)",
		cfg.PetService.URL, cfg.CaregiverService.URL, cfg.PaymentService.URL)

	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		availabilityRepository,
		caregiverClient,
		paymentClient,
		txMgr,
		location,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		caregiverClient,
		txMgr,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		caregiverClient,
		petClient,
		txMgr,
		cfg.Scheduling.HorizonDays,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		caregiverClient,
		cfg.Scheduling.HorizonDays,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	assignCaregiver := assignCaregiverHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	getCaregiverBookings := getCaregiverBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: browsing availability needs no identity.
	api.HandleFunc("/caregivers/{caregiverId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/caregivers/{caregiverId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/assign", assignCaregiver.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/owners/{ownerId}/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/caregivers/{caregiverId}/bookings", getCaregiverBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/caregivers/{caregiverId}/availability",
		updateAvailability.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
