package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/tallerlab/taller-api/internal/application/service"
	"github.com/tallerlab/taller-api/internal/config"
	"github.com/tallerlab/taller-api/internal/infrastructure/database"
	"github.com/tallerlab/taller-api/internal/infrastructure/repository"
	"github.com/tallerlab/taller-api/internal/presentation/http/handler"
	"github.com/tallerlab/taller-api/internal/presentation/http/routes"
	"github.com/tallerlab/taller-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the operator account
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewWorkOrderRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	raffleRepo := repository.NewRaffleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	orderService := service.NewWorkOrderService(orderRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	raffleService := service.NewRaffleService(raffleRepo, orderRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	ledgerService := service.NewLedgerService(expenseService, orderService, expenseRepo, orderRepo)
	summaryService := service.NewSummaryService(orderRepo, expenseRepo, cfg.Tax)
	backupService := service.NewBackupService(orderRepo, expenseRepo, appointmentRepo, raffleRepo, settingsRepo)
	reportService := service.NewReportService(orderRepo, expenseRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		WorkOrder:   handler.NewWorkOrderHandler(orderService),
		Expense:     handler.NewExpenseHandler(expenseService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Raffle:      handler.NewRaffleHandler(raffleService),
		Dashboard:   handler.NewDashboardHandler(summaryService),
		Ledger:      handler.NewLedgerHandler(ledgerService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Backup:      handler.NewBackupHandler(backupService),
		Report:      handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
