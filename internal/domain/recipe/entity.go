// Package recipe contains the core domain logic for recipe management.
// A recipe is owned by a single account and carries an ordered ingredient
// list; ingredients are replaced wholesale, never patched individually.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

const maxNameLength = 200

// Recipe represents a recipe definition, independent of current inventory
type Recipe struct {
	id                 uuid.UUID
	ownerID            string
	name               string
	description        string
	servings           int
	prepTimeMinutes    *int
	cookTimeMinutes    *int
	caloriesPerServing *int
	proteinPerServing  *float64
	instructions       string
	tags               []string
	ingredients        []Ingredient
	createdAt          time.Time
	updatedAt          time.Time
}

// NewRecipe creates a new recipe with validation
func NewRecipe(ownerID, name string, servings int) (*Recipe, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > maxNameLength {
		return nil, ErrNameTooLong
	}
	if servings < 1 {
		return nil, ErrInvalidServings
	}

	now := time.Now()
	return &Recipe{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		servings:  servings,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstitute rebuilds a recipe from persisted state without validation
func Reconstitute(
	id uuid.UUID,
	ownerID, name, description string,
	servings int,
	prepTimeMinutes, cookTimeMinutes, caloriesPerServing *int,
	proteinPerServing *float64,
	instructions string,
	tags []string,
	ingredients []Ingredient,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:                 id,
		ownerID:            ownerID,
		name:               name,
		description:        description,
		servings:           servings,
		prepTimeMinutes:    prepTimeMinutes,
		cookTimeMinutes:    cookTimeMinutes,
		caloriesPerServing: caloriesPerServing,
		proteinPerServing:  proteinPerServing,
		instructions:       instructions,
		tags:               tags,
		ingredients:        ingredients,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// OwnerID returns the owning account identifier
func (r *Recipe) OwnerID() string {
	return r.ownerID
}

// Name returns the recipe's name, unique per owner
func (r *Recipe) Name() string {
	return r.name
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// Servings returns the number of servings the recipe yields
func (r *Recipe) Servings() int {
	return r.servings
}

// PrepTimeMinutes returns the preparation time, if recorded
func (r *Recipe) PrepTimeMinutes() *int {
	return r.prepTimeMinutes
}

// CookTimeMinutes returns the cooking time, if recorded
func (r *Recipe) CookTimeMinutes() *int {
	return r.cookTimeMinutes
}

// CaloriesPerServing returns the calories per serving, if recorded
func (r *Recipe) CaloriesPerServing() *int {
	return r.caloriesPerServing
}

// ProteinPerServing returns grams of protein per serving, if recorded
func (r *Recipe) ProteinPerServing() *float64 {
	return r.proteinPerServing
}

// Instructions returns the free-form instructions text
func (r *Recipe) Instructions() string {
	return r.instructions
}

// Tags returns the recipe's tags
func (r *Recipe) Tags() []string {
	return r.tags
}

// Ingredients returns the ordered ingredient list
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last modified
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// MandatoryIngredients returns the non-optional ingredients; these alone
// determine whether the recipe can be made.
func (r *Recipe) MandatoryIngredients() []Ingredient {
	var mandatory []Ingredient
	for _, ing := range r.ingredients {
		if !ing.Optional {
			mandatory = append(mandatory, ing)
		}
	}
	return mandatory
}

// HasTag reports whether the recipe carries any of the given tags
func (r *Recipe) HasTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range r.tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// SetDescription updates the description
func (r *Recipe) SetDescription(description string) {
	r.description = description
	r.touch()
}

// SetInstructions updates the instructions text
func (r *Recipe) SetInstructions(instructions string) {
	r.instructions = instructions
	r.touch()
}

// SetServings updates the servings count
func (r *Recipe) SetServings(servings int) error {
	if servings < 1 {
		return ErrInvalidServings
	}
	r.servings = servings
	r.touch()
	return nil
}

// SetTimes updates the optional prep and cook times
func (r *Recipe) SetTimes(prepMinutes, cookMinutes *int) {
	r.prepTimeMinutes = prepMinutes
	r.cookTimeMinutes = cookMinutes
	r.touch()
}

// SetNutrition updates the optional per-serving nutrition figures
func (r *Recipe) SetNutrition(calories *int, protein *float64) {
	r.caloriesPerServing = calories
	r.proteinPerServing = protein
	r.touch()
}

// SetTags replaces the tag set
func (r *Recipe) SetTags(tags []string) {
	r.tags = tags
	r.touch()
}

// Rename changes the recipe name; uniqueness per owner is enforced by
// the catalog, not here.
func (r *Recipe) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	r.name = name
	r.touch()
	return nil
}

// AddIngredient appends a validated ingredient to the list
func (r *Recipe) AddIngredient(ingredient Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}
	ingredient.FoodName = normalizedIngredientName(ingredient.FoodName)
	r.ingredients = append(r.ingredients, ingredient)
	r.touch()
	return nil
}

// ReplaceIngredients swaps the entire ingredient list. A persisted recipe
// must keep at least one ingredient for availability queries to be meaningful.
func (r *Recipe) ReplaceIngredients(ingredients []Ingredient) error {
	if len(ingredients) == 0 {
		return ErrNoIngredients
	}
	replacement := make([]Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
		ing.FoodName = normalizedIngredientName(ing.FoodName)
		replacement = append(replacement, ing)
	}
	r.ingredients = replacement
	r.touch()
	return nil
}

func (r *Recipe) touch() {
	r.updatedAt = time.Now()
}
