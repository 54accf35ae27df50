package database

import (
	"fmt"
	"log"

	"github.com/franlead/franlead-api/internal/config"
	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
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
		// Account entities
		&entity.User{},
		&entity.PasswordResetToken{},

		// Lead aggregate
		&entity.Lead{},
		&entity.LeadDetails{},
		&entity.LeadStatusHistory{},
		&entity.Communication{},
		&entity.Task{},

		// Standalone entities
		&entity.Franchise{},
		&entity.EmailSettings{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// defaultUsers are created on first boot so the system is reachable before
// any real accounts exist. Passwords must be rotated in production.
var defaultUsers = []struct {
	Email    string
	FullName string
	Role     enum.Role
	Password string
}{
	{"superadmin@franlead.local", "Super Administrador", enum.RoleSuperAdmin, "superadmin123"},
	{"admin@franlead.local", "Administrador", enum.RoleAdmin, "admin123"},
	{"usuario@franlead.local", "Usuario", enum.RoleUser, "usuario123"},
}

// SeedDefaultData seeds the database with the default accounts
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, u := range defaultUsers {
		var existing entity.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}

		user := entity.User{
			Email:    u.Email,
			FullName: u.FullName,
			Role:     u.Role,
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: failed to create default user %s: %v", u.Email, err)
		}
	}

	log.Println("Default data seeded successfully")
	return nil
}
