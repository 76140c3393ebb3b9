package shopping

import "strings"

// Category identifies a shopping aisle grouping
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryMeat      Category = "meat"
	CategoryDairy     Category = "dairy"
	CategoryGrains    Category = "grains"
	CategoryPantry    Category = "pantry"
	CategoryFrozen    Category = "frozen"
	CategoryBeverages Category = "beverages"
	CategoryOther     Category = "other"
)

// categoryRule pairs a category with its substring keywords. Evaluation
// order is significant: a name matching keywords in several categories takes
// the first match, so the table order must not be rearranged.
type categoryRule struct {
	category Category
	keywords []string
}

var categoryRules = []categoryRule{
	{CategoryProduce, []string{
		"apple", "banana", "lettuce", "tomato", "onion", "garlic",
		"carrot", "celery", "pepper", "broccoli", "spinach",
	}},
	{CategoryMeat, []string{"chicken", "beef", "pork", "fish", "salmon", "turkey"}},
	{CategoryDairy, []string{"milk", "cheese", "yogurt", "butter", "cream", "eggs"}},
	{CategoryGrains, []string{"rice", "pasta", "bread", "flour", "oats", "quinoa"}},
	{CategoryPantry, []string{"oil", "salt", "pepper", "sugar", "sauce", "spice"}},
	{CategoryFrozen, []string{"frozen", "ice cream"}},
	{CategoryBeverages, []string{"juice", "soda", "coffee", "tea"}},
}

// Categorize maps a food name to its shopping category by substring match
// against the lower-cased name; the first matching category wins and unknown
// foods fall back to "other".
func Categorize(foodName string) Category {
	lower := strings.ToLower(foodName)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
