package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShoppingService defines the use cases for shopping list generation
type ShoppingService interface {
	// Commands - operations that modify state
	Generate(ctx context.Context, cmd GenerateShoppingListCommand) (*ShoppingListDTO, error)
	CheckItem(ctx context.Context, itemID uuid.UUID, checked bool) (bool, error)

	// Queries - operations that read state
	Fetch(ctx context.Context, listID uuid.UUID) (*ShoppingListDTO, error)
}

// GenerateShoppingListCommand aggregates a meal-plan window into a deficit
// list. Name defaults to "Shopping List <start date>".
type GenerateShoppingListCommand struct {
	OwnerID   string
	StartDate time.Time
	EndDate   time.Time
	Name      string
}

// ShoppingListDTO is the read model for a shopping list, items ordered by
// category then food name
type ShoppingListDTO struct {
	ID          uuid.UUID             `json:"id"`
	OwnerID     string                `json:"owner_id"`
	Name        string                `json:"name"`
	CreatedDate time.Time             `json:"created_date"`
	Items       []ShoppingListItemDTO `json:"items"`
}

// ShoppingListItemDTO is the read model for one deficit line
type ShoppingListItemDTO struct {
	ID       uuid.UUID `json:"id"`
	FoodName string    `json:"food_name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Category string    `json:"category"`
	Checked  bool      `json:"checked"`
}
