// Package inventory contains the core domain logic for on-hand food items.
// An item is uniquely identified by (owner, normalized food name, location);
// quantity bookkeeping is owned by the inventory ledger service.
package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/larderly/v2/internal/domain/shared"
)

// Location identifies where a food item is stored
type Location string

const (
	LocationPantry  Location = "pantry"
	LocationFridge  Location = "fridge"
	LocationFreezer Location = "freezer"
	LocationCounter Location = "counter"
	LocationOther   Location = "other"
)

// DefaultLocation is used when the caller does not specify a location
const DefaultLocation = LocationPantry

// ParseLocation validates and converts a location string
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case LocationPantry, LocationFridge, LocationFreezer, LocationCounter, LocationOther:
		return Location(s), nil
	case "":
		return DefaultLocation, nil
	default:
		return "", ErrInvalidLocation
	}
}

// Item represents a food item held in a user's inventory
type Item struct {
	id             uuid.UUID
	ownerID        string
	foodName       string // stored normalized
	quantity       float64
	unit           string
	location       Location
	expirationDate *time.Time
	purchaseDate   *time.Time
	cost           *float64
	createdAt      time.Time
	updatedAt      time.Time
}

// NewItem creates a new inventory item with validation.
// The food name is normalized before storage; original casing is discarded.
func NewItem(ownerID, foodName string, quantity float64, unit string, location Location) (*Item, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	normalized := shared.NormalizeFoodName(foodName)
	if normalized == "" {
		return nil, ErrFoodNameRequired
	}

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := ParseLocation(string(location)); err != nil {
		return nil, err
	}
	if location == "" {
		location = DefaultLocation
	}

	now := time.Now()
	today := now.Truncate(24 * time.Hour)

	return &Item{
		id:           uuid.New(),
		ownerID:      ownerID,
		foodName:     normalized,
		quantity:     quantity,
		unit:         unit,
		location:     location,
		purchaseDate: &today,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute rebuilds an item from persisted state without validation
func Reconstitute(
	id uuid.UUID,
	ownerID, foodName string,
	quantity float64,
	unit string,
	location Location,
	expirationDate, purchaseDate *time.Time,
	cost *float64,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:             id,
		ownerID:        ownerID,
		foodName:       foodName,
		quantity:       quantity,
		unit:           unit,
		location:       location,
		expirationDate: expirationDate,
		purchaseDate:   purchaseDate,
		cost:           cost,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ID returns the item's unique identifier
func (i *Item) ID() uuid.UUID {
	return i.id
}

// OwnerID returns the owning account identifier
func (i *Item) OwnerID() string {
	return i.ownerID
}

// FoodName returns the normalized food name
func (i *Item) FoodName() string {
	return i.foodName
}

// Quantity returns the on-hand quantity
func (i *Item) Quantity() float64 {
	return i.quantity
}

// Unit returns the free-form unit string
func (i *Item) Unit() string {
	return i.unit
}

// Location returns where the item is stored
func (i *Item) Location() Location {
	return i.location
}

// ExpirationDate returns the expiration date, if any
func (i *Item) ExpirationDate() *time.Time {
	return i.expirationDate
}

// PurchaseDate returns the purchase date, if any
func (i *Item) PurchaseDate() *time.Time {
	return i.purchaseDate
}

// Cost returns the purchase cost, if any
func (i *Item) Cost() *float64 {
	return i.cost
}

// CreatedAt returns when the row was first created
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns when the row was last modified
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// SetExpirationDate sets the expiration date unconditionally
func (i *Item) SetExpirationDate(date *time.Time) {
	i.expirationDate = date
	i.updatedAt = time.Now()
}

// SetCost sets the purchase cost
func (i *Item) SetCost(cost *float64) {
	i.cost = cost
	i.updatedAt = time.Now()
}

// Add merges an addition into the item: quantities are summed and the
// expiration date is taken only when none is recorded yet (first non-nil wins).
func (i *Item) Add(quantity float64, expiration *time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.quantity += quantity
	if i.expirationDate == nil && expiration != nil {
		i.expirationDate = expiration
	}
	i.updatedAt = time.Now()
	return nil
}

// SetQuantity replaces the on-hand quantity. Zero is allowed; the ledger
// deletes the row in that case. Negative quantities are never stored.
func (i *Item) SetQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	i.quantity = quantity
	i.updatedAt = time.Now()
	return nil
}

// IsDepleted reports whether the item has reached zero quantity
func (i *Item) IsDepleted() bool {
	return i.quantity == 0
}

// IsExpired reports whether the item is expired at the given time.
// Items without an expiration date never expire.
func (i *Item) IsExpired(at time.Time) bool {
	return i.expirationDate != nil && !i.expirationDate.After(at)
}

// ExpiresWithin reports whether the item expires in (now, now+days].
func (i *Item) ExpiresWithin(now time.Time, days int) bool {
	if i.expirationDate == nil {
		return false
	}
	limit := now.AddDate(0, 0, days)
	return i.expirationDate.After(now) && !i.expirationDate.After(limit)
}
