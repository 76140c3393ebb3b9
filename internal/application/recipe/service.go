// Package recipe provides the application layer for the recipe catalog and
// the availability resolver. The resolver reads inventory but never mutates
// it; deduction on consumption lives in the inventory ledger.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/recipe"
	"github.com/larderly/v2/internal/ports/inbound"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/larderly/v2/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the recipe catalog and availability use cases
type Service struct {
	recipeRepo    outbound.RecipeRepository
	inventoryRepo outbound.InventoryRepository
	mealPlanRepo  outbound.MealPlanRepository
	sessions      outbound.SessionStore
	tx            outbound.TransactionManager
	sessionTTL    time.Duration
	logger        *zap.Logger
}

// NewService creates a new recipe service
func NewService(
	recipeRepo outbound.RecipeRepository,
	inventoryRepo outbound.InventoryRepository,
	mealPlanRepo outbound.MealPlanRepository,
	sessions outbound.SessionStore,
	tx outbound.TransactionManager,
	sessionTTL time.Duration,
	logger *zap.Logger,
) inbound.RecipeService {
	return &Service{
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
		mealPlanRepo:  mealPlanRepo,
		sessions:      sessions,
		tx:            tx,
		sessionTTL:    sessionTTL,
		logger:        logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe with its full ingredient list
func (s *Service) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := buildRecipe(cmd)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.recipeRepo.ExistsByName(ctx, cmd.OwnerID, cmd.Name)
		if err != nil {
			return errors.NewDatabaseError("check recipe name", err)
		}
		if exists {
			return errors.NewDuplicateRecipeNameError(cmd.Name)
		}
		if err := s.recipeRepo.Create(ctx, entity); err != nil {
			return errors.NewDatabaseError("create recipe", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Created recipe",
		zap.String("owner_id", cmd.OwnerID),
		zap.String("name", cmd.Name),
		zap.Int("ingredients", len(cmd.Ingredients)),
	)

	return entityToDTO(entity), nil
}

// UpdateRecipe applies whole-field replacement to a recipe. A non-nil
// ingredient slice swaps the entire list; there is no per-ingredient patching.
func (s *Service) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	var dto *inbound.RecipeDTO

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entity, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
		if err != nil {
			return errors.NewDatabaseError("find recipe", err)
		}
		if entity == nil || entity.OwnerID() != cmd.OwnerID {
			return errors.NewRecipeNotFoundError(cmd.RecipeID.String())
		}

		if cmd.Name != nil && *cmd.Name != entity.Name() {
			exists, err := s.recipeRepo.ExistsByName(ctx, cmd.OwnerID, *cmd.Name)
			if err != nil {
				return errors.NewDatabaseError("check recipe name", err)
			}
			if exists {
				return errors.NewDuplicateRecipeNameError(*cmd.Name)
			}
			if err := entity.Rename(*cmd.Name); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.Description != nil {
			entity.SetDescription(*cmd.Description)
		}
		if cmd.Servings != nil {
			if err := entity.SetServings(*cmd.Servings); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.PrepTimeMinutes != nil || cmd.CookTimeMinutes != nil {
			prep, cook := entity.PrepTimeMinutes(), entity.CookTimeMinutes()
			if cmd.PrepTimeMinutes != nil {
				prep = cmd.PrepTimeMinutes
			}
			if cmd.CookTimeMinutes != nil {
				cook = cmd.CookTimeMinutes
			}
			entity.SetTimes(prep, cook)
		}
		if cmd.CaloriesPerServing != nil || cmd.ProteinPerServing != nil {
			calories, protein := entity.CaloriesPerServing(), entity.ProteinPerServing()
			if cmd.CaloriesPerServing != nil {
				calories = cmd.CaloriesPerServing
			}
			if cmd.ProteinPerServing != nil {
				protein = cmd.ProteinPerServing
			}
			entity.SetNutrition(calories, protein)
		}
		if cmd.Instructions != nil {
			entity.SetInstructions(*cmd.Instructions)
		}
		if cmd.Tags != nil {
			entity.SetTags(*cmd.Tags)
		}
		if cmd.Ingredients != nil {
			ingredients := make([]recipe.Ingredient, 0, len(*cmd.Ingredients))
			for _, ing := range *cmd.Ingredients {
				ingredients = append(ingredients, recipe.Ingredient{
					FoodName: ing.FoodName,
					Quantity: ing.Quantity,
					Unit:     ing.Unit,
					Optional: ing.Optional,
					Notes:    ing.Notes,
				})
			}
			if err := entity.ReplaceIngredients(ingredients); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if err := s.recipeRepo.Update(ctx, entity); err != nil {
			return errors.NewDatabaseError("update recipe", err)
		}
		dto = entityToDTO(entity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto, nil
}

// DeleteRecipe removes a recipe and its ingredients. A recipe still
// referenced by meal plan entries is not deleted; the reference must be
// cleared first.
func (s *Service) DeleteRecipe(ctx context.Context, ownerID string, recipeID uuid.UUID) (bool, error) {
	var deleted bool

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entity, err := s.recipeRepo.FindByID(ctx, recipeID)
		if err != nil {
			return errors.NewDatabaseError("find recipe", err)
		}
		if entity == nil || entity.OwnerID() != ownerID {
			return nil // nothing to delete
		}

		references, err := s.mealPlanRepo.CountByRecipe(ctx, recipeID)
		if err != nil {
			return errors.NewDatabaseError("count meal plan references", err)
		}
		if references > 0 {
			return errors.NewRecipeInUseError(recipeID.String()).
				WithMetadata("references", references)
		}

		if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
			return errors.NewDatabaseError("delete recipe", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("Deleted recipe",
			zap.String("owner_id", ownerID),
			zap.String("recipe_id", recipeID.String()),
		)
	}

	return deleted, nil
}

// ImportPresets copies the built-in starter catalog into the owner's own
// recipes. Presets whose name the owner already uses are skipped, which
// makes the import idempotent. Returns how many recipes were created.
func (s *Service) ImportPresets(ctx context.Context, ownerID string) (int, error) {
	var imported int

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, preset := range recipe.Presets() {
			exists, err := s.recipeRepo.ExistsByName(ctx, ownerID, preset.Name)
			if err != nil {
				return errors.NewDatabaseError("check recipe name", err)
			}
			if exists {
				continue
			}

			entity, err := recipe.NewRecipe(ownerID, preset.Name, 1)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			entity.SetTags([]string{preset.Category, "preset"})
			if err := entity.ReplaceIngredients(preset.Ingredients); err != nil {
				return errors.NewValidationError(err.Error())
			}

			if err := s.recipeRepo.Create(ctx, entity); err != nil {
				return errors.NewDatabaseError("create preset recipe", err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Imported preset recipes",
		zap.String("owner_id", ownerID),
		zap.Int("imported", imported),
	)

	return imported, nil
}

// GetRecipe returns a recipe with its ingredients attached
func (s *Service) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return entityToDTO(entity), nil
}

// ListRecipes lists an owner's recipes, optionally filtered to those whose
// tag set intersects the given tags
func (s *Service) ListRecipes(ctx context.Context, ownerID string, tags []string) ([]inbound.RecipeDTO, error) {
	entities, err := s.recipeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(entities))
	for _, entity := range entities {
		if len(tags) > 0 && !entity.HasTag(tags) {
			continue
		}
		dtos = append(dtos, *entityToDTO(entity))
	}
	return dtos, nil
}

// CheckAvailability resolves one recipe against the owner's current
// inventory, with quantities summed across storage locations. The report is
// kept as a short-lived session snapshot so the command layer can refer back
// to it mid-conversation.
func (s *Service) CheckAvailability(ctx context.Context, ownerID string, recipeID uuid.UUID) (*inbound.AvailabilityReport, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil || entity.OwnerID() != ownerID {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	totals, err := s.inventoryRepo.TotalsByFood(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("sum inventory", err)
	}

	report := availabilityToReport(entity, entity.ResolveAvailability(totals))
	s.storeSnapshot(ctx, ownerID, report)

	return report, nil
}

// ListAvailableRecipes returns the recipes whose mandatory ingredients are
// all satisfied by current inventory. It applies the same satisfaction rule
// as CheckAvailability against one inventory snapshot, so the two results
// always agree.
func (s *Service) ListAvailableRecipes(ctx context.Context, ownerID string) ([]inbound.RecipeDTO, error) {
	entities, err := s.recipeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	totals, err := s.inventoryRepo.TotalsByFood(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("sum inventory", err)
	}

	available := make([]inbound.RecipeDTO, 0)
	for _, entity := range entities {
		if entity.ResolveAvailability(totals).CanMake {
			available = append(available, *entityToDTO(entity))
		}
	}
	return available, nil
}

// LastAvailability returns the owner's active availability snapshot, or nil
// when none was stored or it has expired
func (s *Service) LastAvailability(ctx context.Context, ownerID string) (*inbound.AvailabilityReport, error) {
	data, err := s.sessions.Get(ctx, sessionKey(ownerID))
	if err != nil {
		return nil, errors.NewDatabaseError("read availability session", err)
	}
	if data == nil {
		return nil, nil
	}

	var report inbound.AvailabilityReport
	if err := json.Unmarshal(data, &report); err != nil {
		// A corrupt snapshot is dropped rather than surfaced.
		_ = s.sessions.Delete(ctx, sessionKey(ownerID))
		return nil, nil
	}
	return &report, nil
}

func (s *Service) storeSnapshot(ctx context.Context, ownerID string, report *inbound.AvailabilityReport) {
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.sessions.Set(ctx, sessionKey(ownerID), data, s.sessionTTL); err != nil {
		s.logger.Warn("Failed to store availability snapshot",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
	}
}

func sessionKey(ownerID string) string {
	return fmt.Sprintf("availability:%s", ownerID)
}

func buildRecipe(cmd inbound.CreateRecipeCommand) (*recipe.Recipe, error) {
	entity, err := recipe.NewRecipe(cmd.OwnerID, cmd.Name, cmd.Servings)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity.SetDescription(cmd.Description)
	entity.SetInstructions(cmd.Instructions)
	entity.SetTimes(cmd.PrepTimeMinutes, cmd.CookTimeMinutes)
	entity.SetNutrition(cmd.CaloriesPerServing, cmd.ProteinPerServing)
	entity.SetTags(cmd.Tags)

	if len(cmd.Ingredients) == 0 {
		return nil, errors.NewValidationError(recipe.ErrNoIngredients.Error())
	}
	for _, ing := range cmd.Ingredients {
		err := entity.AddIngredient(recipe.Ingredient{
			FoodName: ing.FoodName,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		})
		if err != nil {
			if err == recipe.ErrInvalidIngredientQuantity {
				return nil, errors.NewInvalidQuantityError(ing.FoodName)
			}
			return nil, errors.NewValidationError(err.Error())
		}
	}

	return entity, nil
}

func entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	ingredients := make([]inbound.IngredientDTO, 0, len(entity.Ingredients()))
	for _, ing := range entity.Ingredients() {
		ingredients = append(ingredients, inbound.IngredientDTO{
			FoodName: ing.FoodName,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		})
	}

	return &inbound.RecipeDTO{
		ID:                 entity.ID(),
		OwnerID:            entity.OwnerID(),
		Name:               entity.Name(),
		Description:        entity.Description(),
		Servings:           entity.Servings(),
		PrepTimeMinutes:    entity.PrepTimeMinutes(),
		CookTimeMinutes:    entity.CookTimeMinutes(),
		CaloriesPerServing: entity.CaloriesPerServing(),
		ProteinPerServing:  entity.ProteinPerServing(),
		Instructions:       entity.Instructions(),
		Tags:               entity.Tags(),
		Ingredients:        ingredients,
		CreatedAt:          entity.CreatedAt(),
	}
}

func availabilityToReport(entity *recipe.Recipe, availability recipe.Availability) *inbound.AvailabilityReport {
	return &inbound.AvailabilityReport{
		RecipeID:    entity.ID(),
		RecipeName:  entity.Name(),
		CanMake:     availability.CanMake,
		Ingredients: statusesToDTO(availability.Ingredients),
		Missing:     statusesToDTO(availability.Missing),
		Partial:     statusesToDTO(availability.Partial),
		CheckedAt:   time.Now(),
	}
}

func statusesToDTO(statuses []recipe.IngredientStatus) []inbound.IngredientAvailability {
	result := make([]inbound.IngredientAvailability, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, inbound.IngredientAvailability{
			FoodName:  status.FoodName,
			Required:  status.Quantity,
			Unit:      status.Unit,
			Optional:  status.Optional,
			Available: status.Available,
			Needed:    status.Needed,
		})
	}
	return result
}
