package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/shopping"
	"github.com/larderly/v2/internal/ports/outbound"
	"gorm.io/gorm"
)

// ShoppingListRepository implements the shopping list repository interface
// using GORM
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Create persists the list together with its items
func (r *ShoppingListRepository) Create(ctx context.Context, list *shopping.List) error {
	return conn(ctx, r.db).Create(ListToModel(list)).Error
}

// FindByID returns the list with items attached
func (r *ShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error) {
	var model ShoppingListModel

	result := conn(ctx, r.db).
		Preload("Items").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToList(&model), nil
}

// SetItemChecked toggles the purchased flag on one item
func (r *ShoppingListRepository) SetItemChecked(ctx context.Context, itemID uuid.UUID, checked bool) (bool, error) {
	result := conn(ctx, r.db).
		Model(&ShoppingListItemModel{}).
		Where("id = ?", itemID).
		Update("checked", checked)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
