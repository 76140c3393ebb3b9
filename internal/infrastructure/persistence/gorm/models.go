// Package gorm provides GORM model definitions and repository
// implementations for the storage layer.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItemModel represents the GORM model for inventory items.
// The (owner, food, location) triple is the merge key for additions.
type InventoryItemModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID        string    `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_inventory_key"`
	FoodName       string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_inventory_key"`
	Quantity       float64   `gorm:"not null"`
	Unit           string    `gorm:"type:varchar(50)"`
	Location       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_inventory_key"`
	ExpirationDate *time.Time `gorm:"index"`
	PurchaseDate   *time.Time
	Cost           *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecipeModel represents the GORM model for recipes. Names are unique per
// owner; ingredients live in their own table and are replaced wholesale.
type RecipeModel struct {
	ID                 uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID            string    `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_recipe_owner_name"`
	Name               string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_recipe_owner_name"`
	Description        string    `gorm:"type:text"`
	Servings           int       `gorm:"default:1"`
	PrepTimeMinutes    *int
	CookTimeMinutes    *int
	CaloriesPerServing *int
	ProteinPerServing  *float64
	Instructions       string      `gorm:"type:text"`
	Tags               StringSlice `gorm:"type:json"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeIngredientModel represents one ingredient line of a recipe.
// Position preserves the author's ordering.
type RecipeIngredientModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID uuid.UUID `gorm:"type:char(36);not null;index"`
	Position int       `gorm:"not null"`
	FoodName string    `gorm:"type:varchar(200);not null;index"`
	Quantity float64   `gorm:"not null"`
	Unit     string    `gorm:"type:varchar(50)"`
	Optional bool      `gorm:"default:false"`
	Notes    string    `gorm:"type:text"`
}

// MealPlanEntryModel represents the GORM model for planned meals
type MealPlanEntryModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID     string    `gorm:"type:varchar(64);not null;index:idx_mealplan_owner_date"`
	RecipeID    uuid.UUID `gorm:"type:char(36);not null;index"`
	PlannedDate time.Time `gorm:"not null;index:idx_mealplan_owner_date"`
	MealType    string    `gorm:"type:varchar(20);not null"`
	Servings    int       `gorm:"default:1"`
	Completed   bool      `gorm:"default:false"`
	CreatedAt   time.Time
}

// ShoppingListModel represents the GORM model for shopping list snapshots
type ShoppingListModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID     string    `gorm:"type:varchar(64);not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	CreatedDate time.Time `gorm:"not null"`

	Items []ShoppingListItemModel `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// ShoppingListItemModel represents one deficit line on a shopping list
type ShoppingListItemModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	ListID   uuid.UUID `gorm:"type:char(36);not null;index"`
	FoodName string    `gorm:"type:varchar(200);not null"`
	Quantity float64   `gorm:"not null"`
	Unit     string    `gorm:"type:varchar(50)"`
	Category string    `gorm:"type:varchar(20);not null"`
	Checked  bool      `gorm:"default:false"`
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for InventoryItemModel
func (m *InventoryItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (m *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeIngredientModel
func (m *RecipeIngredientModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanEntryModel
func (m *MealPlanEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ShoppingListModel
func (m *ShoppingListModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ShoppingListItemModel
func (m *ShoppingListItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

func (MealPlanEntryModel) TableName() string {
	return "meal_plan_entries"
}

func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}
