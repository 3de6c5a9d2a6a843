package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	httpapi "rentacar-backend/internal/api/http"
	"rentacar-backend/internal/config"
	"rentacar-backend/internal/db"
	"rentacar-backend/internal/excel"
	"rentacar-backend/internal/jobs"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/pdf"
	"rentacar-backend/internal/repository/postgres"
	"rentacar-backend/internal/scheduler"
	"rentacar-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rentacar backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	conn, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply pending schema migrations
	if err := db.MigrateUp(conn); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(conn)

	// Initialize Email Service (disabled when SMTP is not configured)
	var emailSvc service.EmailService
	if cfg.EmailEnabled() {
		emailSvc = service.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
		logger.Info("Email notifications enabled", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
	} else {
		logger.Info("Email notifications disabled")
	}

	// Initialize Services
	clientSvc := service.NewClientService(store.ClientRepository)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, store.RentalRepository, store.LookupRepository)
	maintenanceSvc := service.NewMaintenanceService(
		store.MaintenanceRepository,
		store.VehicleRepository,
		store.RentalRepository,
		store.LookupRepository,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.VehicleRepository,
		store.ClientRepository,
		store.EmployeeRepository,
		store.MaintenanceRepository,
		emailSvc,
	)
	incidentSvc := service.NewIncidentService(store.IncidentRepository, store.RentalRepository, store.LookupRepository)
	reportSvc := service.NewReportService(store.ReportRepository, excel.NewGenerator(), pdf.NewGenerator())

	// Initialize HTTP handlers and router
	handlers := httpapi.NewHandlers(clientSvc, employeeSvc, vehicleSvc, rentalSvc, maintenanceSvc, incidentSvc, reportSvc)
	router := httpapi.NewRouter(handlers)

	// Initialize scheduled jobs
	jobRunner := jobs.NewJobRunner(conn, store, &jobs.Services{
		Rental:      rentalSvc,
		Maintenance: maintenanceSvc,
		Email:       emailSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Block until interrupted
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	if err := srv.Close(); err != nil {
		logger.Error("Failed to close HTTP server", "error", err)
	}
}
