package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/recipe"
	"github.com/larderly/v2/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe together with its ingredient rows
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	return conn(ctx, r.db).Create(RecipeToModel(rec)).Error
}

// Update updates an existing recipe. The ingredient list is replaced
// wholesale, so the old rows are dropped before the new set is written.
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	db := conn(ctx, r.db)
	model := RecipeToModel(rec)

	if err := db.Delete(&RecipeIngredientModel{}, "recipe_id = ?", model.ID).Error; err != nil {
		return err
	}

	result := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("recipe not found")
	}
	return nil
}

// Delete removes a recipe and its ingredient rows
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := conn(ctx, r.db)

	if err := db.Delete(&RecipeIngredientModel{}, "recipe_id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&RecipeModel{}, "id = ?", id).Error
}

// FindByID finds a recipe by ID with ingredients attached
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := conn(ctx, r.db).
		Preload("Ingredients").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindByOwner lists an owner's recipes ordered by name
func (r *RecipeRepository) FindByOwner(ctx context.Context, ownerID string) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	result := conn(ctx, r.db).
		Preload("Ingredients").
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}

// ExistsByName reports whether the owner already has a recipe of this name
func (r *RecipeRepository) ExistsByName(ctx context.Context, ownerID, name string) (bool, error) {
	var count int64

	result := conn(ctx, r.db).
		Model(&RecipeModel{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
