// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the command layer uses to drive the engine
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InventoryService defines the use cases of the inventory ledger
type InventoryService interface {
	// Commands - operations that modify state
	AddItem(ctx context.Context, cmd AddItemCommand) (*InventoryItemDTO, error)
	SetQuantity(ctx context.Context, cmd SetQuantityCommand) (bool, error)
	UseItem(ctx context.Context, cmd UseItemCommand) (*InventoryItemDTO, error)
	ConsumeRecipe(ctx context.Context, ownerID string, recipeID uuid.UUID) error

	// Queries - operations that read state
	ListItems(ctx context.Context, q ListItemsQuery) ([]InventoryItemDTO, error)
	ListExpiringWithin(ctx context.Context, ownerID string, days int) ([]InventoryItemDTO, error)
}

// AddItemCommand contains data for adding food to the inventory
type AddItemCommand struct {
	OwnerID        string
	FoodName       string
	Quantity       float64
	Unit           string
	Location       string // defaults to pantry
	ExpirationDate *time.Time
	Cost           *float64
}

// SetQuantityCommand replaces an item's quantity. An empty location matches
// the food across all locations; quantity zero removes the row(s).
type SetQuantityCommand struct {
	OwnerID  string
	FoodName string
	Quantity float64
	Location string
}

// UseItemCommand deducts a consumed amount from the inventory
type UseItemCommand struct {
	OwnerID  string
	FoodName string
	Quantity float64
}

// ListItemsQuery filters the inventory listing
type ListItemsQuery struct {
	OwnerID        string
	Location       string // empty for all locations
	IncludeExpired bool
}

// InventoryItemDTO is the read model for an inventory item
type InventoryItemDTO struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        string     `json:"owner_id"`
	FoodName       string     `json:"food_name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	Location       string     `json:"location"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	Cost           *float64   `json:"cost,omitempty"`
}
