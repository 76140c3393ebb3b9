// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/larderly/v2/internal/domain/inventory"
	"github.com/larderly/v2/internal/domain/recipe"
	"github.com/stretchr/testify/require"
)

// ItemBuilder provides a fluent interface for building test inventory items
type ItemBuilder struct {
	ownerID    string
	foodName   string
	quantity   float64
	unit       string
	location   inventory.Location
	expiration *time.Time
	cost       *float64
}

// NewItemBuilder creates a new item builder with randomized defaults
func NewItemBuilder() *ItemBuilder {
	faker := gofakeit.New(0)

	return &ItemBuilder{
		ownerID:  "owner-" + faker.LetterN(8),
		foodName: faker.Fruit(),
		quantity: float64(faker.Number(1, 10)),
		unit:     "pieces",
		location: inventory.DefaultLocation,
	}
}

// WithOwner sets the owning account
func (b *ItemBuilder) WithOwner(ownerID string) *ItemBuilder {
	b.ownerID = ownerID
	return b
}

// WithFood sets the food name
func (b *ItemBuilder) WithFood(foodName string) *ItemBuilder {
	b.foodName = foodName
	return b
}

// WithQuantity sets the quantity and unit
func (b *ItemBuilder) WithQuantity(quantity float64, unit string) *ItemBuilder {
	b.quantity = quantity
	b.unit = unit
	return b
}

// WithLocation sets the storage location
func (b *ItemBuilder) WithLocation(location inventory.Location) *ItemBuilder {
	b.location = location
	return b
}

// WithExpiration sets the expiration date
func (b *ItemBuilder) WithExpiration(date time.Time) *ItemBuilder {
	b.expiration = &date
	return b
}

// WithCost sets the purchase cost
func (b *ItemBuilder) WithCost(cost float64) *ItemBuilder {
	b.cost = &cost
	return b
}

// Build creates the inventory item, failing the test on invalid input
func (b *ItemBuilder) Build(t *testing.T) *inventory.Item {
	t.Helper()

	item, err := inventory.NewItem(b.ownerID, b.foodName, b.quantity, b.unit, b.location)
	require.NoError(t, err, "failed to build test inventory item")
	item.SetExpirationDate(b.expiration)
	item.SetCost(b.cost)
	return item
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	ownerID     string
	name        string
	servings    int
	tags        []string
	ingredients []recipe.Ingredient
}

// NewRecipeBuilder creates a new recipe builder with randomized defaults
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(0)

	return &RecipeBuilder{
		ownerID:  "owner-" + faker.LetterN(8),
		name:     fmt.Sprintf("%s %s", faker.AdjectiveDescriptive(), faker.Dinner()),
		servings: 1,
	}
}

// WithOwner sets the owning account
func (b *RecipeBuilder) WithOwner(ownerID string) *RecipeBuilder {
	b.ownerID = ownerID
	return b
}

// WithName sets the recipe name
func (b *RecipeBuilder) WithName(name string) *RecipeBuilder {
	b.name = name
	return b
}

// WithServings sets the servings count
func (b *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	b.servings = servings
	return b
}

// WithTags sets the tag list
func (b *RecipeBuilder) WithTags(tags ...string) *RecipeBuilder {
	b.tags = tags
	return b
}

// WithIngredient appends a mandatory ingredient
func (b *RecipeBuilder) WithIngredient(foodName string, quantity float64, unit string) *RecipeBuilder {
	b.ingredients = append(b.ingredients, recipe.Ingredient{
		FoodName: foodName,
		Quantity: quantity,
		Unit:     unit,
	})
	return b
}

// WithOptionalIngredient appends an optional ingredient
func (b *RecipeBuilder) WithOptionalIngredient(foodName string, quantity float64, unit string) *RecipeBuilder {
	b.ingredients = append(b.ingredients, recipe.Ingredient{
		FoodName: foodName,
		Quantity: quantity,
		Unit:     unit,
		Optional: true,
	})
	return b
}

// Build creates the recipe, failing the test on invalid input. A builder
// with no ingredients gets a single pantry staple so the result is always
// a valid persisted recipe.
func (b *RecipeBuilder) Build(t *testing.T) *recipe.Recipe {
	t.Helper()

	rec, err := recipe.NewRecipe(b.ownerID, b.name, b.servings)
	require.NoError(t, err, "failed to build test recipe")

	if len(b.tags) > 0 {
		rec.SetTags(b.tags)
	}

	ingredients := b.ingredients
	if len(ingredients) == 0 {
		ingredients = []recipe.Ingredient{{FoodName: "salt", Quantity: 1, Unit: "pinch"}}
	}
	require.NoError(t, rec.ReplaceIngredients(ingredients), "failed to set test ingredients")

	return rec
}
