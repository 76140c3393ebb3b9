// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/inventory"
	"github.com/larderly/v2/internal/domain/mealplan"
	"github.com/larderly/v2/internal/domain/recipe"
	"github.com/larderly/v2/internal/domain/shopping"
)

// InventoryRepository defines the interface for inventory item persistence.
// Food names passed in are assumed to be normalized already.
type InventoryRepository interface {
	Save(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, item *inventory.Item) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByKey looks up the unique row for (owner, food, location);
	// returns nil without error when absent.
	FindByKey(ctx context.Context, ownerID, foodName string, location inventory.Location) (*inventory.Item, error)

	// FindByFood returns all rows for a food across locations.
	FindByFood(ctx context.Context, ownerID, foodName string) ([]*inventory.Item, error)

	// FindByOwner lists an owner's items sorted by food name. A nil location
	// matches all locations. When includeExpired is false, rows whose
	// expiration date is not after now are excluded; rows without an
	// expiration date are always included.
	FindByOwner(ctx context.Context, ownerID string, location *inventory.Location, includeExpired bool, now time.Time) ([]*inventory.Item, error)

	// FindExpiringWithin returns items with an expiration date in (from, until],
	// ascending by expiration date.
	FindExpiringWithin(ctx context.Context, ownerID string, from, until time.Time) ([]*inventory.Item, error)

	// TotalsByFood returns the owner's total available quantity per normalized
	// food name, summed across all locations. Foods with no rows are absent.
	TotalsByFood(ctx context.Context, ownerID string) (map[string]float64, error)
}

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	Update(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns nil without error when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)

	// FindByOwner lists an owner's recipes ordered by name.
	FindByOwner(ctx context.Context, ownerID string) ([]*recipe.Recipe, error)

	// ExistsByName reports whether the owner already has a recipe of this name.
	ExistsByName(ctx context.Context, ownerID, name string) (bool, error)
}

// MealPlanRepository defines the interface for meal plan persistence
type MealPlanRepository interface {
	Create(ctx context.Context, entry *mealplan.Entry) error
	Update(ctx context.Context, entry *mealplan.Entry) error

	// FindByID returns nil without error when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error)

	// FindInRange returns an owner's entries with planned_date in
	// [start, end], ordered by date then meal slot.
	FindInRange(ctx context.Context, ownerID string, start, end time.Time) ([]*mealplan.Entry, error)

	// CountByRecipe reports how many entries reference the recipe.
	CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)
}

// ShoppingListRepository defines the interface for shopping list persistence
type ShoppingListRepository interface {
	// Create persists the list together with its items.
	Create(ctx context.Context, list *shopping.List) error

	// FindByID returns the list with items attached, nil without error
	// when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error)

	// SetItemChecked toggles the purchased flag on one item and reports
	// whether a row was affected.
	SetItemChecked(ctx context.Context, itemID uuid.UUID, checked bool) (bool, error)
}

// TransactionManager runs a function within one storage transaction.
// Repository calls made with the context passed to fn join that transaction;
// any error rolls the whole unit back.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionStore holds short-lived per-owner session state, such as the last
// availability snapshot referenced mid-conversation by the command layer.
// Entries expire on their TTL; Get returns nil without error when absent
// or expired.
type SessionStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
