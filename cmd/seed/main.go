package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

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

	SeedServiceCategories(db)

	log.Println("Success: seeding completed.")
}

// SeedServiceCategories populates the catalog with the default categories.
// Existing rows are left untouched, so the seeder is safe to re-run.
func SeedServiceCategories(db *gorm.DB) {
	categories := []model.ServiceCategory{
		{
			Name:        "Plumbing",
			Slug:        "plumbing",
			Description: "Pipe repairs, leak fixes and bathroom fittings",
			PriceRange:  model.PriceRange{Min: 200, Max: 2000, Unit: "per visit"},
			CommonServices: datatypes.NewJSONSlice([]model.CommonService{
				{Name: "Tap Repair", TypicalPrice: 250, Duration: "30 min"},
				{Name: "Pipe Leakage Fix", TypicalPrice: 500, Duration: "1 hour"},
				{Name: "Bathroom Fitting", TypicalPrice: 1500, Duration: "3 hours"},
			}),
			RequiredSkills: datatypes.NewJSONSlice([]string{"plumbing"}),
			IsActive:       true,
		},
		{
			Name:        "Electrical",
			Slug:        "electrical",
			Description: "Wiring, switchboards and appliance installation",
			PriceRange:  model.PriceRange{Min: 150, Max: 3000, Unit: "per visit"},
			CommonServices: datatypes.NewJSONSlice([]model.CommonService{
				{Name: "Switchboard Repair", TypicalPrice: 300, Duration: "45 min"},
				{Name: "Fan Installation", TypicalPrice: 400, Duration: "1 hour"},
				{Name: "House Wiring Check", TypicalPrice: 1200, Duration: "2 hours"},
			}),
			RequiredSkills: datatypes.NewJSONSlice([]string{"electrical"}),
			IsActive:       true,
		},
		{
			Name:        "Cleaning",
			Slug:        "cleaning",
			Description: "Home deep cleaning, sofa and carpet cleaning",
			PriceRange:  model.PriceRange{Min: 500, Max: 5000, Unit: "per job"},
			CommonServices: datatypes.NewJSONSlice([]model.CommonService{
				{Name: "Deep Cleaning", TypicalPrice: 2500, Duration: "4 hours"},
				{Name: "Sofa Cleaning", TypicalPrice: 800, Duration: "1 hour"},
			}),
			RequiredSkills: datatypes.NewJSONSlice([]string{"cleaning"}),
			IsActive:       true,
		},
		{
			Name:        "Carpentry",
			Slug:        "carpentry",
			Description: "Furniture repair, assembly and woodwork",
			PriceRange:  model.PriceRange{Min: 300, Max: 4000, Unit: "per job"},
			CommonServices: datatypes.NewJSONSlice([]model.CommonService{
				{Name: "Furniture Assembly", TypicalPrice: 600, Duration: "1 hour"},
				{Name: "Door Repair", TypicalPrice: 450, Duration: "1 hour"},
			}),
			RequiredSkills: datatypes.NewJSONSlice([]string{"carpentry"}),
			IsActive:       true,
		},
		{
			Name:        "Painting",
			Slug:        "painting",
			Description: "Interior and exterior wall painting",
			PriceRange:  model.PriceRange{Min: 1000, Max: 25000, Unit: "per job"},
			CommonServices: datatypes.NewJSONSlice([]model.CommonService{
				{Name: "Single Room Painting", TypicalPrice: 4000, Duration: "1 day"},
			}),
			RequiredSkills: datatypes.NewJSONSlice([]string{"painting"}),
			IsActive:       true,
		},
	}

	for _, category := range categories {
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&category)
		if result.Error != nil {
			log.Printf("Warn: failed to seed category %q: %v", category.Name, result.Error)
			continue
		}
		if result.RowsAffected > 0 {
			log.Printf("Seeded category: %s", category.Name)
		}
	}
}
