// Package inventory provides the application layer for the inventory ledger.
// The ledger is the only component allowed to mutate inventory rows: it
// merges additions, applies deductions, and removes rows that reach zero.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/inventory"
	"github.com/larderly/v2/internal/domain/shared"
	"github.com/larderly/v2/internal/ports/inbound"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/larderly/v2/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the inventory ledger use cases
type Service struct {
	inventoryRepo outbound.InventoryRepository
	recipeRepo    outbound.RecipeRepository
	tx            outbound.TransactionManager
	logger        *zap.Logger
}

// NewService creates a new inventory ledger service
func NewService(
	inventoryRepo outbound.InventoryRepository,
	recipeRepo outbound.RecipeRepository,
	tx outbound.TransactionManager,
	logger *zap.Logger,
) inbound.InventoryService {
	return &Service{
		inventoryRepo: inventoryRepo,
		recipeRepo:    recipeRepo,
		tx:            tx,
		logger:        logger.Named("inventory-service"),
	}
}

// AddItem adds food to the inventory, merging into an existing row when one
// exists for the same (owner, food, location). Quantities are summed; an
// expiration date already on the row wins over the incoming one.
func (s *Service) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.InventoryItemDTO, error) {
	if cmd.Quantity <= 0 {
		return nil, errors.NewInvalidQuantityError("added quantity must be greater than zero")
	}

	location, err := inventory.ParseLocation(cmd.Location)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	foodName := shared.NormalizeFoodName(cmd.FoodName)
	if foodName == "" {
		return nil, errors.NewValidationError("food name is required")
	}

	var dto *inbound.InventoryItemDTO
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.inventoryRepo.FindByKey(ctx, cmd.OwnerID, foodName, location)
		if err != nil {
			return errors.NewDatabaseError("find inventory item", err)
		}

		if existing != nil {
			if err := existing.Add(cmd.Quantity, cmd.ExpirationDate); err != nil {
				return errors.NewInvalidQuantityError(err.Error())
			}
			if err := s.inventoryRepo.Update(ctx, existing); err != nil {
				return errors.NewDatabaseError("update inventory item", err)
			}
			dto = itemToDTO(existing)
			return nil
		}

		item, err := inventory.NewItem(cmd.OwnerID, cmd.FoodName, cmd.Quantity, cmd.Unit, location)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		item.SetExpirationDate(cmd.ExpirationDate)
		item.SetCost(cmd.Cost)

		if err := s.inventoryRepo.Save(ctx, item); err != nil {
			return errors.NewDatabaseError("save inventory item", err)
		}
		dto = itemToDTO(item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Added inventory item",
		zap.String("owner_id", cmd.OwnerID),
		zap.String("food", foodName),
		zap.Float64("quantity", cmd.Quantity),
		zap.String("location", string(location)),
	)

	return dto, nil
}

// SetQuantity replaces an item's quantity. With an empty location the food is
// matched across all locations. Setting exactly zero deletes the row(s) in
// the same transaction. Returns whether any row was affected.
func (s *Service) SetQuantity(ctx context.Context, cmd inbound.SetQuantityCommand) (bool, error) {
	if cmd.Quantity < 0 {
		return false, errors.NewInvalidQuantityError("quantity cannot be negative")
	}

	foodName := shared.NormalizeFoodName(cmd.FoodName)

	var affected bool
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		items, err := s.matchItems(ctx, cmd.OwnerID, foodName, cmd.Location)
		if err != nil {
			return err
		}

		for _, item := range items {
			if cmd.Quantity == 0 {
				if err := s.inventoryRepo.Delete(ctx, item.ID()); err != nil {
					return errors.NewDatabaseError("delete inventory item", err)
				}
			} else {
				if err := item.SetQuantity(cmd.Quantity); err != nil {
					return errors.NewInvalidQuantityError(err.Error())
				}
				if err := s.inventoryRepo.Update(ctx, item); err != nil {
					return errors.NewDatabaseError("update inventory item", err)
				}
			}
			affected = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return affected, nil
}

// UseItem deducts a consumed amount from the inventory. Unlike the raw
// ledger write, this operation validates sufficiency first and surfaces
// InsufficientQuantity before any mutation. Rows that reach zero are removed.
// The returned DTO reports the remaining total; nil when fully depleted.
func (s *Service) UseItem(ctx context.Context, cmd inbound.UseItemCommand) (*inbound.InventoryItemDTO, error) {
	if cmd.Quantity <= 0 {
		return nil, errors.NewInvalidQuantityError("used quantity must be greater than zero")
	}

	foodName := shared.NormalizeFoodName(cmd.FoodName)

	var dto *inbound.InventoryItemDTO
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		items, err := s.inventoryRepo.FindByFood(ctx, cmd.OwnerID, foodName)
		if err != nil {
			return errors.NewDatabaseError("find inventory items", err)
		}
		if len(items) == 0 {
			return errors.NewItemNotFoundError(foodName)
		}

		var available float64
		for _, item := range items {
			available += item.Quantity()
		}
		if available < cmd.Quantity {
			return errors.NewInsufficientQuantityError(foodName, available, cmd.Quantity)
		}

		remaining, err := s.deductAcrossLocations(ctx, items, cmd.Quantity)
		if err != nil {
			return err
		}

		if remaining != nil {
			dto = itemToDTO(remaining)
			dto.Quantity = available - cmd.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Used inventory item",
		zap.String("owner_id", cmd.OwnerID),
		zap.String("food", foodName),
		zap.Float64("quantity", cmd.Quantity),
	)

	return dto, nil
}

// ConsumeRecipe deducts every mandatory ingredient of a recipe from the
// owner's inventory, atomically. Availability is verified inside the same
// transaction; an unmakeable recipe leaves the inventory untouched.
// Per-ingredient deductions clamp at zero rather than going negative.
func (s *Service) ConsumeRecipe(ctx context.Context, ownerID string, recipeID uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := s.recipeRepo.FindByID(ctx, recipeID)
		if err != nil {
			return errors.NewDatabaseError("find recipe", err)
		}
		if rec == nil || rec.OwnerID() != ownerID {
			return errors.NewRecipeNotFoundError(recipeID.String())
		}

		totals, err := s.inventoryRepo.TotalsByFood(ctx, ownerID)
		if err != nil {
			return errors.NewDatabaseError("sum inventory", err)
		}

		availability := rec.ResolveAvailability(totals)
		if !availability.CanMake {
			return errors.NewAppError(
				errors.CodeInsufficientQuantity,
				"Not enough ingredients to make this recipe",
				rec.Name(),
			)
		}

		for _, ing := range rec.MandatoryIngredients() {
			items, err := s.inventoryRepo.FindByFood(ctx, ownerID, ing.FoodName)
			if err != nil {
				return errors.NewDatabaseError("find inventory items", err)
			}
			if _, err := s.deductAcrossLocations(ctx, items, ing.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Consumed recipe ingredients",
		zap.String("owner_id", ownerID),
		zap.String("recipe_id", recipeID.String()),
	)

	return nil
}

// ListItems lists an owner's inventory sorted by food name. Expired rows are
// excluded unless requested; rows without an expiration date always appear.
func (s *Service) ListItems(ctx context.Context, q inbound.ListItemsQuery) ([]inbound.InventoryItemDTO, error) {
	var location *inventory.Location
	if q.Location != "" {
		parsed, err := inventory.ParseLocation(q.Location)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		location = &parsed
	}

	items, err := s.inventoryRepo.FindByOwner(ctx, q.OwnerID, location, q.IncludeExpired, time.Now())
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory", err)
	}

	dtos := make([]inbound.InventoryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *itemToDTO(item))
	}
	return dtos, nil
}

// ListExpiringWithin lists items whose expiration date falls within the next
// given number of days, ascending by expiration date.
func (s *Service) ListExpiringWithin(ctx context.Context, ownerID string, days int) ([]inbound.InventoryItemDTO, error) {
	if days < 0 {
		return nil, errors.NewValidationError("days cannot be negative")
	}

	now := time.Now()
	items, err := s.inventoryRepo.FindExpiringWithin(ctx, ownerID, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, errors.NewDatabaseError("list expiring inventory", err)
	}

	dtos := make([]inbound.InventoryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *itemToDTO(item))
	}
	return dtos, nil
}

// matchItems resolves the rows addressed by a (food, optional location) pair
func (s *Service) matchItems(ctx context.Context, ownerID, foodName, location string) ([]*inventory.Item, error) {
	if location == "" {
		items, err := s.inventoryRepo.FindByFood(ctx, ownerID, foodName)
		if err != nil {
			return nil, errors.NewDatabaseError("find inventory items", err)
		}
		return items, nil
	}

	parsed, err := inventory.ParseLocation(location)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	item, err := s.inventoryRepo.FindByKey(ctx, ownerID, foodName, parsed)
	if err != nil {
		return nil, errors.NewDatabaseError("find inventory item", err)
	}
	if item == nil {
		return nil, nil
	}
	return []*inventory.Item{item}, nil
}

// deductAcrossLocations walks the rows for one food and removes the given
// quantity, clamping at zero. Zeroed rows are deleted. Returns a surviving
// row, if any, so callers can report what remains.
func (s *Service) deductAcrossLocations(ctx context.Context, items []*inventory.Item, quantity float64) (*inventory.Item, error) {
	remaining := quantity
	var survivor *inventory.Item

	for _, item := range items {
		if remaining <= 0 {
			survivor = item
			continue
		}

		take := remaining
		if take > item.Quantity() {
			take = item.Quantity()
		}
		remaining -= take

		newQuantity := item.Quantity() - take
		if newQuantity == 0 {
			if err := s.inventoryRepo.Delete(ctx, item.ID()); err != nil {
				return nil, errors.NewDatabaseError("delete inventory item", err)
			}
			continue
		}

		if err := item.SetQuantity(newQuantity); err != nil {
			return nil, errors.NewInvalidQuantityError(err.Error())
		}
		if err := s.inventoryRepo.Update(ctx, item); err != nil {
			return nil, errors.NewDatabaseError("update inventory item", err)
		}
		survivor = item
	}

	return survivor, nil
}

func itemToDTO(item *inventory.Item) *inbound.InventoryItemDTO {
	return &inbound.InventoryItemDTO{
		ID:             item.ID(),
		OwnerID:        item.OwnerID(),
		FoodName:       item.FoodName(),
		Quantity:       item.Quantity(),
		Unit:           item.Unit(),
		Location:       string(item.Location()),
		ExpirationDate: item.ExpirationDate(),
		PurchaseDate:   item.PurchaseDate(),
		Cost:           item.Cost(),
	}
}
