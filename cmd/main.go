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

	cancelBookingHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/check_availability"
	checkinBookingHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/checkin_booking"
	checkoutBookingHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/checkout_booking"
	createBookingHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/create_booking"
	getBookingHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/get_booking"
	getPoliciesHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/get_policies"
	getUserBookingsHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/get_user_bookings"
	initiatePaymentHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/initiate_payment"
	payBookingHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/pay_booking"
	paymentCallbackHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/payment_callback"
	paymentStatusHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/payment_status"
	searchBookingsHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/search_bookings"
	updatePolicyHandler "github.com/sumonben/hotelmanagement/internal/api/handlers/update_policy"
	"github.com/sumonben/hotelmanagement/internal/api/middleware"
	"github.com/sumonben/hotelmanagement/internal/config"
	bookingRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/booking"
	paymentRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/payment"
	policyRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/policy"
	profileRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/profile"
	roomRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/room"
	"github.com/sumonben/hotelmanagement/internal/integrations/sslcommerz"
	bookingsService "github.com/sumonben/hotelmanagement/internal/service/bookings"
	policiesService "github.com/sumonben/hotelmanagement/internal/service/policies"
	checkAvailabilityUC "github.com/sumonben/hotelmanagement/internal/usecase/check_availability"
	createBookingUC "github.com/sumonben/hotelmanagement/internal/usecase/create_booking"
	initiatePaymentUC "github.com/sumonben/hotelmanagement/internal/usecase/initiate_payment"
	reconcilePaymentUC "github.com/sumonben/hotelmanagement/internal/usecase/reconcile_payment"
	"github.com/sumonben/hotelmanagement/pkg/dbmetrics"
	"github.com/sumonben/hotelmanagement/pkg/logger"
	"github.com/sumonben/hotelmanagement/pkg/metrics"
	"github.com/sumonben/hotelmanagement/pkg/simpletxmanager"
	"github.com/sumonben/hotelmanagement/pkg/txmanager"
)

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

	log.Info("Starting hotel booking service...")

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
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	gateway := sslcommerz.NewClient(sslcommerz.Config{
		BaseURL:       cfg.SSLCommerz.BaseURL,
		StoreID:       cfg.SSLCommerz.StoreID,
		StorePassword: cfg.SSLCommerz.StorePassword,
		SuccessURL:    cfg.SSLCommerz.SuccessURL,
		FailURL:       cfg.SSLCommerz.FailURL,
		CancelURL:     cfg.SSLCommerz.CancelURL,
		Timeout:       time.Duration(cfg.SSLCommerz.Timeout) * time.Second,
	}, log)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)",
		cfg.SSLCommerz.BaseURL, cfg.SSLCommerz.Timeout)

	var (
		bookingRepository *bookingRepo.Repository
		paymentRepository *paymentRepo.Repository
		policyRepository  *policyRepo.Repository
		roomRepository    *roomRepo.Repository
		profileRepository *profileRepo.Repository
		txMgr             bookingsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := &bookingsService.RealTimeProvider{}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		paymentRepository,
		policyRepository,
		roomRepository,
		txMgr,
		clock,
		cfg.Payments.Currency,
		log,
	)
	policySvc := policiesService.NewService(policyRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		profileRepository,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		roomRepository,
		log,
	)
	initiatePaymentUseCase := initiatePaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		gateway,
		cfg.Payments.Currency,
		log,
	)
	reconcilePaymentUseCase := reconcilePaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		gateway,
		txMgr,
		cfg.Payments.AllowGlobalFallback,
		cfg.Payments.Currency,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	searchBookings := searchBookingsHandler.NewHandler(bookingSvc, log)
	payBooking := payBookingHandler.NewHandler(bookingSvc, log)
	initiatePayment := initiatePaymentHandler.NewHandler(initiatePaymentUseCase, log)
	paymentCallback := paymentCallbackHandler.NewHandler(reconcilePaymentUseCase, log)
	paymentStatus := paymentStatusHandler.NewHandler(bookingSvc, log)
	checkinBooking := checkinBookingHandler.NewHandler(bookingSvc, log)
	checkoutBooking := checkoutBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPolicies := getPoliciesHandler.NewHandler(policySvc, log)
	updatePolicy := updatePolicyHandler.NewHandler(policySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/hotels/{hotelId}/rooms/{roomId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/policies", getPolicies.Handle).Methods(http.MethodGet)

	// The gateway posts here; callbacks carry no user identity
	api.HandleFunc("/payments/callback", paymentCallback.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingRef:BK[0-9A-F]+}/payment-status",
		paymentStatus.Handle).Methods(http.MethodGet)

	// Protected routes, require X-User-ID
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/search", searchBookings.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/pay", payBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/payments/initiate",
		initiatePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/checkin", checkinBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/checkout", checkoutBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hotels/{hotelId}/policies/{policyId}", updatePolicy.Handle).Methods(http.MethodPut)

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
