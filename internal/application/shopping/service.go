// Package shopping provides the application layer for shopping list
// generation. Generation aggregates the non-completed meals of a plan window,
// subtracts what the inventory already holds, and persists the positive
// deficits as a dated snapshot.
package shopping

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/shopping"
	"github.com/larderly/v2/internal/ports/inbound"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/larderly/v2/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the shopping list use cases
type Service struct {
	shoppingRepo  outbound.ShoppingListRepository
	mealPlanRepo  outbound.MealPlanRepository
	recipeRepo    outbound.RecipeRepository
	inventoryRepo outbound.InventoryRepository
	tx            outbound.TransactionManager
	logger        *zap.Logger
}

// NewService creates a new shopping list service
func NewService(
	shoppingRepo outbound.ShoppingListRepository,
	mealPlanRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	inventoryRepo outbound.InventoryRepository,
	tx outbound.TransactionManager,
	logger *zap.Logger,
) inbound.ShoppingService {
	return &Service{
		shoppingRepo:  shoppingRepo,
		mealPlanRepo:  mealPlanRepo,
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
		tx:            tx,
		logger:        logger.Named("shopping-service"),
	}
}

// requirementKey aggregates required quantities per food and unit. The same
// food in two different units yields two separate lines; units are never
// converted.
type requirementKey struct {
	foodName string
	unit     string
}

// Generate builds a shopping list from the owner's non-completed planned
// meals in [start, end]. Each recipe's mandatory ingredients are scaled by
// the entry's servings, summed per (food, unit), reduced by the inventory
// total for that food, and the positive deficits are persisted. A list with
// no deficits is still created, as the empty list is itself the answer.
func (s *Service) Generate(ctx context.Context, cmd inbound.GenerateShoppingListCommand) (*inbound.ShoppingListDTO, error) {
	name := cmd.Name
	if name == "" {
		name = fmt.Sprintf("Shopping List %s", cmd.StartDate.Format("2006-01-02"))
	}

	var dto *inbound.ShoppingListDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entries, err := s.mealPlanRepo.FindInRange(ctx, cmd.OwnerID, cmd.StartDate, cmd.EndDate)
		if err != nil {
			return errors.NewDatabaseError("list meal plan entries", err)
		}

		required := make(map[requirementKey]float64)
		for _, entry := range entries {
			if entry.Completed() {
				continue
			}
			rec, err := s.recipeRepo.FindByID(ctx, entry.RecipeID())
			if err != nil {
				return errors.NewDatabaseError("find recipe", err)
			}
			if rec == nil {
				continue
			}
			for _, ing := range rec.MandatoryIngredients() {
				key := requirementKey{foodName: ing.FoodName, unit: ing.Unit}
				required[key] += ing.Quantity * float64(entry.Servings())
			}
		}

		totals, err := s.inventoryRepo.TotalsByFood(ctx, cmd.OwnerID)
		if err != nil {
			return errors.NewDatabaseError("sum inventory", err)
		}

		list, err := shopping.NewList(cmd.OwnerID, name, time.Now())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		// Inventory totals are keyed by food alone, so the available amount
		// offsets one unit's line fully and leaves other units of the same
		// food untouched. Deterministic key order keeps that offset stable.
		for _, key := range sortedKeys(required) {
			deficit := required[key] - totals[key.foodName]
			if deficit <= 0 {
				continue
			}
			err := list.AddItem(key.foodName, deficit, key.unit, shopping.Categorize(key.foodName))
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if err := s.shoppingRepo.Create(ctx, list); err != nil {
			return errors.NewDatabaseError("create shopping list", err)
		}

		list.SortForDisplay()
		dto = listToDTO(list)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generated shopping list",
		zap.String("owner_id", cmd.OwnerID),
		zap.String("name", name),
		zap.Int("items", len(dto.Items)),
	)

	return dto, nil
}

// CheckItem toggles the purchased flag on one list item. Returns false when
// the item does not exist.
func (s *Service) CheckItem(ctx context.Context, itemID uuid.UUID, checked bool) (bool, error) {
	affected, err := s.shoppingRepo.SetItemChecked(ctx, itemID, checked)
	if err != nil {
		return false, errors.NewDatabaseError("check shopping list item", err)
	}
	return affected, nil
}

// Fetch returns a shopping list with items ordered by category then food name
func (s *Service) Fetch(ctx context.Context, listID uuid.UUID) (*inbound.ShoppingListDTO, error) {
	list, err := s.shoppingRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return nil, errors.NewShoppingListNotFoundError(listID.String())
	}

	list.SortForDisplay()
	return listToDTO(list), nil
}

func sortedKeys(required map[requirementKey]float64) []requirementKey {
	keys := make([]requirementKey, 0, len(required))
	for key := range required {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].foodName != keys[b].foodName {
			return keys[a].foodName < keys[b].foodName
		}
		return keys[a].unit < keys[b].unit
	})
	return keys
}

func listToDTO(list *shopping.List) *inbound.ShoppingListDTO {
	items := make([]inbound.ShoppingListItemDTO, 0, len(list.Items()))
	for _, item := range list.Items() {
		items = append(items, inbound.ShoppingListItemDTO{
			ID:       item.ID,
			FoodName: item.FoodName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Category: string(item.Category),
			Checked:  item.Checked,
		})
	}
	return &inbound.ShoppingListDTO{
		ID:          list.ID(),
		OwnerID:     list.OwnerID(),
		Name:        list.Name(),
		CreatedDate: list.CreatedDate(),
		Items:       items,
	}
}
