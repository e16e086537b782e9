package database

import (
	"fmt"
	"os"

	"osg-portal/database/seeders"
	"osg-portal/logger"
	"osg-portal/models/branch"
	claimModel "osg-portal/models/claim"
	"osg-portal/models/log"
	"osg-portal/models/purchase"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	// Get database configuration from environment variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE") // Optional: "disable", "require", etc.

	// Set default sslmode if not provided
	if sslmode == "" {
		sslmode = "disable"
	}

	// Build PostgreSQL DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	// Create indexes for better performance
	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	// Seed reference data
	seeders.SeedBranches(DB)

	return DB, nil
}

// autoMigrate runs auto migration for all models
func autoMigrate() error {
	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&claimModel.Claim{},
		&purchase.Purchase{},
		&branch.Branch{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Models with dependencies on Stage 1
	stage2Models := []interface{}{
		&claimModel.ClaimStatusEvent{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Remaining models
	remainingModels := []interface{}{
		// Logging
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// Claim indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_claims_claim_id ON claims(claim_id)").Error; err != nil {
		return fmt.Errorf("failed to create claim claim_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_claims_status ON claims(status)").Error; err != nil {
		return fmt.Errorf("failed to create claim status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_claims_mobile_number ON claims(mobile_number)").Error; err != nil {
		return fmt.Errorf("failed to create claim mobile_number index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_claims_branch ON claims(branch)").Error; err != nil {
		return fmt.Errorf("failed to create claim branch index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_claims_created_at ON claims(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create claim created_at index: %w", err)
	}

	// Purchase indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_purchases_mobile_number ON purchases(mobile_number)").Error; err != nil {
		return fmt.Errorf("failed to create purchase mobile_number index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_method ON logs(method)").Error; err != nil {
		return fmt.Errorf("failed to create log method index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// Legacy function for backward compatibility
func ConnectDB() (*gorm.DB, error) {
	return InitDB()
}
