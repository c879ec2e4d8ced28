package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"hsms-be/internal/model"
	"hsms-be/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, database.DefaultPoolConfig())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.Customer{},
		&model.ServiceProvider{},
		&model.Admin{},
		&model.ServiceCategory{},
		&model.ServiceRequest{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Listing and sweep paths lean on these; AutoMigrate only covers the
	// indexes declared in struct tags.
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_service_requests_customer_status ON service_requests (customer_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_service_requests_provider_status ON service_requests (service_provider_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications (recipient_id, recipient_type, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_customers_deactivated_at ON customers (deactivated_at) WHERE is_active = false;`,
		`CREATE INDEX IF NOT EXISTS idx_service_providers_deactivated_at ON service_providers (deactivated_at) WHERE is_active = false;`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: database migration completed via GORM.")
}
