// Package shopping contains the core domain logic for shopping lists.
// A list is a dated snapshot generated from a meal-plan window; it is never
// reconciled with inventory after generation, only regenerated.
package shopping

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// List represents a generated shopping list
type List struct {
	id          uuid.UUID
	ownerID     string
	name        string
	createdDate time.Time
	items       []ListItem
}

// ListItem represents one deficit line on a shopping list.
// Quantity is the positive shortfall between required and available.
type ListItem struct {
	ID       uuid.UUID
	FoodName string
	Quantity float64
	Unit     string
	Category Category
	Checked  bool
}

// NewList creates a new shopping list snapshot
func NewList(ownerID, name string, createdDate time.Time) (*List, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	return &List{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		createdDate: createdDate,
	}, nil
}

// Reconstitute rebuilds a list from persisted state without validation
func Reconstitute(id uuid.UUID, ownerID, name string, createdDate time.Time, items []ListItem) *List {
	return &List{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		createdDate: createdDate,
		items:       items,
	}
}

// ID returns the list's unique identifier
func (l *List) ID() uuid.UUID {
	return l.id
}

// OwnerID returns the owning account identifier
func (l *List) OwnerID() string {
	return l.ownerID
}

// Name returns the list's display name
func (l *List) Name() string {
	return l.name
}

// CreatedDate returns the snapshot date
func (l *List) CreatedDate() time.Time {
	return l.createdDate
}

// Items returns the deficit lines
func (l *List) Items() []ListItem {
	return l.items
}

// AddItem appends a deficit line; zero or negative deficits are rejected
// because only genuine shortfalls appear on a list.
func (l *List) AddItem(foodName string, quantity float64, unit string, category Category) error {
	if quantity <= 0 {
		return ErrNonPositiveDeficit
	}
	l.items = append(l.items, ListItem{
		ID:       uuid.New(),
		FoodName: foodName,
		Quantity: quantity,
		Unit:     unit,
		Category: category,
	})
	return nil
}

// SortForDisplay orders items by category then food name
func (l *List) SortForDisplay() {
	sort.SliceStable(l.items, func(a, b int) bool {
		if l.items[a].Category != l.items[b].Category {
			return l.items[a].Category < l.items[b].Category
		}
		return l.items[a].FoodName < l.items[b].FoodName
	})
}
