package recipe

// IngredientStatus classifies one ingredient requirement against an
// inventory snapshot. Needed is the shortfall and is set only when the
// ingredient is partially available.
type IngredientStatus struct {
	Ingredient
	Available float64
	Needed    float64
}

// Availability is the result of resolving a recipe against an inventory
// snapshot. CanMake holds iff no mandatory ingredient is missing or partial;
// optional ingredients are reported but never block.
type Availability struct {
	CanMake     bool
	Ingredients []IngredientStatus
	Missing     []IngredientStatus
	Partial     []IngredientStatus
}

// ResolveAvailability classifies every ingredient against the given totals,
// keyed by normalized food name and summed across storage locations.
// Quantities are compared nominally; units are never converted, so a recipe
// wanting "2 cups" is checked against whatever quantity the inventory row
// happens to carry. This is a known limitation, kept deliberately.
func (r *Recipe) ResolveAvailability(totals map[string]float64) Availability {
	result := Availability{}

	for _, ing := range r.ingredients {
		status := IngredientStatus{
			Ingredient: ing,
			Available:  totals[ing.FoodName],
		}
		result.Ingredients = append(result.Ingredients, status)

		if ing.Optional {
			continue
		}

		switch {
		case status.Available == 0:
			result.Missing = append(result.Missing, status)
		case status.Available < ing.Quantity:
			status.Needed = ing.Quantity - status.Available
			result.Partial = append(result.Partial, status)
		}
	}

	result.CanMake = len(result.Missing) == 0 && len(result.Partial) == 0
	return result
}
