package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fabrimet/salesops-api/internal/config"
	"github.com/fabrimet/salesops-api/internal/database"
	"github.com/fabrimet/salesops-api/internal/http/handler"
	"github.com/fabrimet/salesops-api/internal/http/middleware"
	"github.com/fabrimet/salesops-api/internal/http/router"
	"github.com/fabrimet/salesops-api/internal/jobs"
	"github.com/fabrimet/salesops-api/internal/logger"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/fabrimet/salesops-api/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	plantRepo := repository.NewPlantRepository(db)
	contactPersonRepo := repository.NewContactPersonRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	communicationRepo := repository.NewCommunicationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, officeRepo, plantRepo, contactPersonRepo, log)
	enquiryService := service.NewEnquiryService(enquiryRepo, companyRepo, log)
	quotationService := service.NewQuotationService(quotationRepo, enquiryRepo, log)
	communicationService := service.NewCommunicationService(communicationRepo, companyRepo, contactPersonRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	documentService := service.NewDocumentService(documentRepo, enquiryRepo, quotationRepo, log)
	dashboardService := service.NewDashboardService(db, companyRepo, enquiryRepo, quotationRepo, communicationRepo, log)
	backupService := service.NewBackupService(db, log, cfg.Backup.Dir, cfg.Backup.TableDelay())

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	companyHandler := handler.NewCompanyHandler(companyService, log)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService, quotationService, log)
	quotationHandler := handler.NewQuotationHandler(quotationService, log)
	communicationHandler := handler.NewCommunicationHandler(communicationService, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService, log)
	documentHandler := handler.NewDocumentHandler(documentService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	adminHandler := handler.NewAdminHandler(backupService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		companyHandler,
		enquiryHandler,
		quotationHandler,
		communicationHandler,
		employeeHandler,
		documentHandler,
		dashboardHandler,
		adminHandler,
	)

	// Initialize and start scheduler for the nightly backup
	var scheduler *jobs.Scheduler
	if cfg.Backup.AutoEnabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterBackupJob(
			scheduler,
			backupService,
			log,
			cfg.Backup.AutoCron,
			jobs.DefaultBackupTimeout,
		); err != nil {
			log.Error("Failed to register backup job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with backup job",
				zap.String("cron_expr", cfg.Backup.AutoCron),
			)
		}
	} else {
		log.Info("Scheduled backup disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
