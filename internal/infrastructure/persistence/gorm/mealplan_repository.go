package gorm

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/mealplan"
	"github.com/larderly/v2/internal/ports/outbound"
	"gorm.io/gorm"
)

// MealPlanRepository implements the meal plan repository interface using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create persists a new meal plan entry
func (r *MealPlanRepository) Create(ctx context.Context, entry *mealplan.Entry) error {
	return conn(ctx, r.db).Create(EntryToModel(entry)).Error
}

// Update updates an existing meal plan entry
func (r *MealPlanRepository) Update(ctx context.Context, entry *mealplan.Entry) error {
	result := conn(ctx, r.db).Save(EntryToModel(entry))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("meal plan entry not found")
	}
	return nil
}

// FindByID finds a meal plan entry by ID
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error) {
	var model MealPlanEntryModel

	result := conn(ctx, r.db).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToEntry(&model), nil
}

// FindInRange returns entries planned in [start, end], ordered by date then
// meal slot. Slot order is resolved in memory since it is not alphabetical.
func (r *MealPlanRepository) FindInRange(ctx context.Context, ownerID string, start, end time.Time) ([]*mealplan.Entry, error) {
	var models []MealPlanEntryModel

	result := conn(ctx, r.db).
		Where("owner_id = ? AND planned_date >= ? AND planned_date <= ?", ownerID, start, end).
		Order("planned_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*mealplan.Entry, len(models))
	for i := range models {
		entries[i] = ModelToEntry(&models[i])
	}
	sortEntries(entries)
	return entries, nil
}

// CountByRecipe reports how many entries reference the recipe
func (r *MealPlanRepository) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64

	result := conn(ctx, r.db).
		Model(&MealPlanEntryModel{}).
		Where("recipe_id = ?", recipeID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func sortEntries(entries []*mealplan.Entry) {
	sort.SliceStable(entries, func(a, b int) bool {
		if !entries[a].PlannedDate().Equal(entries[b].PlannedDate()) {
			return entries[a].PlannedDate().Before(entries[b].PlannedDate())
		}
		return entries[a].MealType().SortOrder() < entries[b].MealType().SortOrder()
	})
}
