package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/inventory"
	"github.com/larderly/v2/internal/ports/outbound"
	"gorm.io/gorm"
)

// InventoryRepository implements the inventory repository interface using GORM
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) outbound.InventoryRepository {
	return &InventoryRepository{db: db}
}

// Save persists a new inventory item
func (r *InventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	return conn(ctx, r.db).Create(ItemToModel(item)).Error
}

// Update updates an existing inventory item
func (r *InventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	result := conn(ctx, r.db).Save(ItemToModel(item))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("inventory item not found")
	}
	return nil
}

// Delete removes an inventory item by ID
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&InventoryItemModel{}, "id = ?", id).Error
}

// FindByKey looks up the unique row for (owner, food, location)
func (r *InventoryRepository) FindByKey(ctx context.Context, ownerID, foodName string, location inventory.Location) (*inventory.Item, error) {
	var model InventoryItemModel

	result := conn(ctx, r.db).
		First(&model, "owner_id = ? AND food_name = ? AND location = ?", ownerID, foodName, string(location))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToItem(&model), nil
}

// FindByFood returns all rows for a food across locations
func (r *InventoryRepository) FindByFood(ctx context.Context, ownerID, foodName string) ([]*inventory.Item, error) {
	var models []InventoryItemModel

	result := conn(ctx, r.db).
		Where("owner_id = ? AND food_name = ?", ownerID, foodName).
		Order("location ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToItems(models), nil
}

// FindByOwner lists an owner's items sorted by food name
func (r *InventoryRepository) FindByOwner(ctx context.Context, ownerID string, location *inventory.Location, includeExpired bool, now time.Time) ([]*inventory.Item, error) {
	query := conn(ctx, r.db).Where("owner_id = ?", ownerID)

	if location != nil {
		query = query.Where("location = ?", string(*location))
	}
	if !includeExpired {
		query = query.Where("expiration_date IS NULL OR expiration_date > ?", now)
	}

	var models []InventoryItemModel
	result := query.Order("food_name ASC, location ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToItems(models), nil
}

// FindExpiringWithin returns items expiring in (from, until]
func (r *InventoryRepository) FindExpiringWithin(ctx context.Context, ownerID string, from, until time.Time) ([]*inventory.Item, error) {
	var models []InventoryItemModel

	result := conn(ctx, r.db).
		Where("owner_id = ? AND expiration_date > ? AND expiration_date <= ?", ownerID, from, until).
		Order("expiration_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToItems(models), nil
}

// TotalsByFood sums quantities per food across all locations
func (r *InventoryRepository) TotalsByFood(ctx context.Context, ownerID string) (map[string]float64, error) {
	type row struct {
		FoodName string
		Total    float64
	}
	var rows []row

	result := conn(ctx, r.db).
		Model(&InventoryItemModel{}).
		Select("food_name, SUM(quantity) AS total").
		Where("owner_id = ?", ownerID).
		Group("food_name").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make(map[string]float64, len(rows))
	for _, r := range rows {
		totals[r.FoodName] = r.Total
	}
	return totals, nil
}

func modelsToItems(models []InventoryItemModel) []*inventory.Item {
	items := make([]*inventory.Item, len(models))
	for i := range models {
		items[i] = ModelToItem(&models[i])
	}
	return items
}
