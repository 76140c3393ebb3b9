// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"
	"time"

	gormModels "github.com/larderly/v2/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.InventoryItemModel{},
		&gormModels.RecipeModel{},
		&gormModels.RecipeIngredientModel{},
		&gormModels.MealPlanEntryModel{},
		&gormModels.ShoppingListModel{},
		&gormModels.ShoppingListItemModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with a small demo pantry
func SeedDatabase(db *gorm.DB) error {
	// Check if data already exists
	var itemCount int64
	db.Model(&gormModels.InventoryItemModel{}).Count(&itemCount)
	if itemCount > 0 {
		return nil // Already seeded
	}

	const demoOwner = "demo"
	inThreeDays := time.Now().AddDate(0, 0, 3)

	staples := []gormModels.InventoryItemModel{
		{OwnerID: demoOwner, FoodName: "eggs", Quantity: 12, Unit: "pieces", Location: "fridge", ExpirationDate: &inThreeDays},
		{OwnerID: demoOwner, FoodName: "bread", Quantity: 1, Unit: "loaf", Location: "counter"},
		{OwnerID: demoOwner, FoodName: "butter", Quantity: 1, Unit: "stick", Location: "fridge"},
		{OwnerID: demoOwner, FoodName: "rice", Quantity: 4, Unit: "cups", Location: "pantry"},
		{OwnerID: demoOwner, FoodName: "olive oil", Quantity: 1, Unit: "bottle", Location: "pantry"},
		{OwnerID: demoOwner, FoodName: "chicken breast", Quantity: 2, Unit: "pieces", Location: "freezer"},
	}

	for _, item := range staples {
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create demo inventory item: %w", err)
		}
	}

	return nil
}
