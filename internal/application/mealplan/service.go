// Package mealplan provides the application layer for meal planning.
package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/mealplan"
	"github.com/larderly/v2/internal/ports/inbound"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/larderly/v2/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the meal planning use cases
type Service struct {
	mealPlanRepo outbound.MealPlanRepository
	recipeRepo   outbound.RecipeRepository
	tx           outbound.TransactionManager
	logger       *zap.Logger
}

// NewService creates a new meal plan service
func NewService(
	mealPlanRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	tx outbound.TransactionManager,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &Service{
		mealPlanRepo: mealPlanRepo,
		recipeRepo:   recipeRepo,
		tx:           tx,
		logger:       logger.Named("mealplan-service"),
	}
}

// PlanMeal schedules a recipe on a calendar date. The recipe must exist and
// belong to the owner; the meal slot defaults to dinner. Multiple entries may
// share a date and slot.
func (s *Service) PlanMeal(ctx context.Context, cmd inbound.PlanMealCommand) (*inbound.MealPlanEntryDTO, error) {
	mealType, err := mealplan.ParseMealType(cmd.MealType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var dto *inbound.MealPlanEntryDTO
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
		if err != nil {
			return errors.NewDatabaseError("find recipe", err)
		}
		if rec == nil || rec.OwnerID() != cmd.OwnerID {
			return errors.NewRecipeNotFoundError(cmd.RecipeID.String())
		}

		entry, err := mealplan.NewEntry(cmd.OwnerID, cmd.RecipeID, cmd.PlannedDate, mealType, cmd.Servings)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := s.mealPlanRepo.Create(ctx, entry); err != nil {
			return errors.NewDatabaseError("create meal plan entry", err)
		}

		dto = entryToDTO(entry, rec.Name(), rec.CaloriesPerServing(), rec.ProteinPerServing())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Planned meal",
		zap.String("owner_id", cmd.OwnerID),
		zap.String("recipe_id", cmd.RecipeID.String()),
		zap.Time("planned_date", dto.PlannedDate),
		zap.String("meal_type", dto.MealType),
	)

	return dto, nil
}

// CompleteMeal marks a planned meal as cooked. Completed entries drop out of
// shopping list aggregation. Returns false when the entry does not exist or
// belongs to another owner. Completing twice is a no-op.
func (s *Service) CompleteMeal(ctx context.Context, ownerID string, entryID uuid.UUID) (bool, error) {
	var completed bool

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := s.mealPlanRepo.FindByID(ctx, entryID)
		if err != nil {
			return errors.NewDatabaseError("find meal plan entry", err)
		}
		if entry == nil || entry.OwnerID() != ownerID {
			return nil
		}

		entry.Complete()
		if err := s.mealPlanRepo.Update(ctx, entry); err != nil {
			return errors.NewDatabaseError("update meal plan entry", err)
		}
		completed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return completed, nil
}

// GetPlan returns the owner's planned meals in [start, end], ordered by date
// then meal slot, each joined with the recipe's name and nutrition.
func (s *Service) GetPlan(ctx context.Context, ownerID string, start, end time.Time) ([]inbound.MealPlanEntryDTO, error) {
	entries, err := s.mealPlanRepo.FindInRange(ctx, ownerID, start, end)
	if err != nil {
		return nil, errors.NewDatabaseError("list meal plan entries", err)
	}

	// One lookup per distinct recipe; a plan week rarely references many.
	type recipeInfo struct {
		name     string
		calories *int
		protein  *float64
	}
	recipes := make(map[uuid.UUID]recipeInfo)

	dtos := make([]inbound.MealPlanEntryDTO, 0, len(entries))
	for _, entry := range entries {
		info, ok := recipes[entry.RecipeID()]
		if !ok {
			rec, err := s.recipeRepo.FindByID(ctx, entry.RecipeID())
			if err != nil {
				return nil, errors.NewDatabaseError("find recipe", err)
			}
			if rec != nil {
				info = recipeInfo{
					name:     rec.Name(),
					calories: rec.CaloriesPerServing(),
					protein:  rec.ProteinPerServing(),
				}
			}
			recipes[entry.RecipeID()] = info
		}
		dtos = append(dtos, *entryToDTO(entry, info.name, info.calories, info.protein))
	}
	return dtos, nil
}

func entryToDTO(entry *mealplan.Entry, recipeName string, calories *int, protein *float64) *inbound.MealPlanEntryDTO {
	return &inbound.MealPlanEntryDTO{
		ID:                 entry.ID(),
		OwnerID:            entry.OwnerID(),
		RecipeID:           entry.RecipeID(),
		RecipeName:         recipeName,
		PlannedDate:        entry.PlannedDate(),
		MealType:           string(entry.MealType()),
		Servings:           entry.Servings(),
		Completed:          entry.Completed(),
		CaloriesPerServing: calories,
		ProteinPerServing:  protein,
	}
}
