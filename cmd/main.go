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

	cancelAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createClientHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_client"
	createPaymentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_payment"
	createReviewHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_review"
	generateSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/generate_slots"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAppointmentPaymentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment_payments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_client_appointments"
	getClientStatisticsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_client_statistics"
	getDailyAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_daily_appointments"
	getDailySummaryHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_daily_summary"
	getEmployeeScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_employee_schedule"
	listClientsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_clients"
	listEmployeesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_employees"
	listServicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_services"
	sweepRemindersHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/sweep_reminders"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointments"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/clients"
	paymentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/payments"
	reportRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/reports"
	slotRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/slots"
	notifyGateClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/notifygate"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-AppointmentService/internal/service/clients"
	paymentsService "github.com/m04kA/SMC-AppointmentService/internal/service/payments"
	reportsService "github.com/m04kA/SMC-AppointmentService/internal/service/reports"
	cancelAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	generateSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/generate_slots"
	sendRemindersUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SMC-AppointmentService...")
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

	// Инициализируем клиент шлюза уведомлений
	notifyClient := notifyGateClient.NewClient(
		cfg.NotifyGate.URL,
		time.Duration(cfg.NotifyGate.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (NotifyGate=%s timeout=%ds)",
		cfg.NotifyGate.URL, cfg.NotifyGate.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		clientRepository      *clientRepo.Repository
		catalogRepository     *catalogRepo.Repository
		slotRepository        *slotRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		paymentRepository     *paymentRepo.Repository
		reportRepository      *reportRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		clientRepository = clientRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		reportRepository = reportRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		clientRepository = clientRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		reportRepository = reportRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	clientSvc := clientsService.NewService(clientRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, slotRepository, log)
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		&appointmentsService.RealTimeProvider{},
		log,
	)
	paymentSvc := paymentsService.NewService(
		paymentRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	reportSvc := reportsService.NewService(
		reportRepository,
		clientRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		catalogRepository,
		txMgr,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		slotRepository,
		clientRepository,
		catalogRepository,
		txMgr,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		appointmentRepository,
		slotRepository,
		txMgr,
		log,
	)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		appointmentRepository,
		notifyClient,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(catalogSvc, log)
	getEmployeeSchedule := getEmployeeScheduleHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(catalogSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDailyAppointments := getDailyAppointmentsHandler.NewHandler(appointmentSvc, log)
	createPayment := createPaymentHandler.NewHandler(paymentSvc, log)
	getAppointmentPayments := getAppointmentPaymentsHandler.NewHandler(paymentSvc, log)
	createReview := createReviewHandler.NewHandler(paymentSvc, log)
	getDailySummary := getDailySummaryHandler.NewHandler(reportSvc, log)
	getClientStatistics := getClientStatisticsHandler.NewHandler(reportSvc, log)
	sweepReminders := sweepRemindersHandler.NewHandler(sendRemindersUseCase, cfg.Reminders.HoursBefore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем request-id и metrics middleware
	r.Use(middleware.RequestID)
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

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/categories", listServices.HandleCategories).Methods(http.MethodGet)

	// Доступные слоты по услуге
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Мастера и их расписание
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/schedule",
		getEmployeeSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Клиенты ---
	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/appointments",
		getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Слоты расписания ---
	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getDailyAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Платежи и отзывы ---
	protected.HandleFunc("/appointments/{appointmentId}/payments",
		createPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/payments",
		getAppointmentPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/review",
		createReview.Handle).Methods(http.MethodPost)

	// --- Отчеты ---
	protected.HandleFunc("/reports/daily-summary", getDailySummary.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/clients/{clientId}/statistics",
		getClientStatistics.Handle).Methods(http.MethodGet)

	// --- Напоминания ---
	protected.HandleFunc("/reminders/sweep", sweepReminders.Handle).Methods(http.MethodPost)

	// Фоновый обход напоминаний
	stopSweepCh := make(chan struct{})
	if cfg.Reminders.Enabled {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Reminders.SweepIntervalMinutes) * time.Minute)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					result, err := sendRemindersUseCase.Execute(
						context.Background(),
						&sendRemindersUC.Request{HoursBefore: cfg.Reminders.HoursBefore},
					)
					if err != nil {
						log.Error("Reminder sweep failed: %v", err)
						continue
					}
					log.Info("Reminder sweep finished: processed=%d sent=%d failed=%d",
						result.Processed, result.Sent, result.Failed)
				case <-stopSweepCh:
					return
				}
			}
		}()
		log.Info("Reminder sweeper started (interval=%dm, hours_before=%d)",
			cfg.Reminders.SweepIntervalMinutes, cfg.Reminders.HoursBefore)
	}

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

	// Останавливаем фоновый обход напоминаний
	if cfg.Reminders.Enabled {
		close(stopSweepCh)
		log.Info("Reminder sweeper stopped")
	}

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
