package database

import (
	"fmt"
	"log"

	"github.com/tallerlab/taller-api/internal/config"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.WorkshopSettings{},
		&entity.WorkOrder{},
		&entity.WorkItem{},
		&entity.Expense{},
		&entity.Appointment{},
		&entity.RaffleWinner{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the operator account from config when missing
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		var existing entity.User
		if err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}

			name := cfg.Admin.Name
			if name == "" {
				name = "Administrador"
			}
			admin := entity.User{
				Name:     name,
				Email:    cfg.Admin.Email,
				Password: string(hashedPassword),
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("Warning: failed to create operator account: %v", err)
			} else {
				log.Printf("Operator account created: %s", cfg.Admin.Email)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
