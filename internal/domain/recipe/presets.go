package recipe

// Preset represents one entry of the built-in starter catalog. Presets are
// imported into a user's own catalog on request; after import they are
// ordinary recipes.
type Preset struct {
	Key         string
	Name        string
	Category    string
	Ingredients []Ingredient
}

// Presets returns the built-in starter catalog in a stable order
func Presets() []Preset {
	return presetCatalog
}

var presetCatalog = []Preset{
	// Breakfast
	{
		Key:      "scrambled_eggs_toast",
		Name:     "Scrambled Eggs with Toast",
		Category: "breakfast",
		Ingredients: []Ingredient{
			{FoodName: "eggs", Quantity: 2, Unit: "large"},
			{FoodName: "whole wheat bread", Quantity: 2, Unit: "slices"},
			{FoodName: "butter", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "milk", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "salt", Quantity: 0.25, Unit: "teaspoon"},
			{FoodName: "black pepper", Quantity: 0.125, Unit: "teaspoon"},
		},
	},
	{
		Key:      "oatmeal_berries",
		Name:     "Oatmeal with Berries",
		Category: "breakfast",
		Ingredients: []Ingredient{
			{FoodName: "rolled oats", Quantity: 0.5, Unit: "cup"},
			{FoodName: "water", Quantity: 1, Unit: "cup"},
			{FoodName: "blueberries", Quantity: 0.5, Unit: "cup"},
			{FoodName: "strawberries", Quantity: 0.5, Unit: "cup"},
			{FoodName: "honey", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "cinnamon", Quantity: 0.25, Unit: "teaspoon"},
		},
	},
	{
		Key:      "greek_yogurt_parfait",
		Name:     "Greek Yogurt Parfait",
		Category: "breakfast",
		Ingredients: []Ingredient{
			{FoodName: "greek yogurt", Quantity: 1, Unit: "cup"},
			{FoodName: "granola", Quantity: 0.25, Unit: "cup"},
			{FoodName: "mixed berries", Quantity: 0.5, Unit: "cup"},
			{FoodName: "honey", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "chia seeds", Quantity: 1, Unit: "teaspoon"},
		},
	},
	{
		Key:      "avocado_toast",
		Name:     "Avocado Toast",
		Category: "breakfast",
		Ingredients: []Ingredient{
			{FoodName: "whole grain bread", Quantity: 2, Unit: "slices"},
			{FoodName: "avocado", Quantity: 1, Unit: "medium"},
			{FoodName: "lemon juice", Quantity: 1, Unit: "teaspoon"},
			{FoodName: "salt", Quantity: 0.25, Unit: "teaspoon"},
			{FoodName: "red pepper flakes", Quantity: 0.125, Unit: "teaspoon"},
			{FoodName: "olive oil", Quantity: 1, Unit: "teaspoon"},
		},
	},

	// Lunch
	{
		Key:      "chicken_caesar_salad",
		Name:     "Chicken Caesar Salad",
		Category: "lunch",
		Ingredients: []Ingredient{
			{FoodName: "grilled chicken breast", Quantity: 4, Unit: "ounces"},
			{FoodName: "romaine lettuce", Quantity: 3, Unit: "cups"},
			{FoodName: "caesar dressing", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "parmesan cheese", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "croutons", Quantity: 0.25, Unit: "cup"},
			{FoodName: "lemon wedge", Quantity: 1, Unit: "piece"},
		},
	},
	{
		Key:      "turkey_sandwich",
		Name:     "Turkey Sandwich",
		Category: "lunch",
		Ingredients: []Ingredient{
			{FoodName: "whole wheat bread", Quantity: 2, Unit: "slices"},
			{FoodName: "sliced turkey", Quantity: 3, Unit: "ounces"},
			{FoodName: "cheddar cheese", Quantity: 1, Unit: "slice"},
			{FoodName: "lettuce", Quantity: 2, Unit: "leaves"},
			{FoodName: "tomato", Quantity: 2, Unit: "slices"},
			{FoodName: "mustard", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "mayonnaise", Quantity: 1, Unit: "tablespoon"},
		},
	},
	{
		Key:      "quinoa_bowl",
		Name:     "Mediterranean Quinoa Bowl",
		Category: "lunch",
		Ingredients: []Ingredient{
			{FoodName: "cooked quinoa", Quantity: 1, Unit: "cup"},
			{FoodName: "chickpeas", Quantity: 0.5, Unit: "cup"},
			{FoodName: "cucumber", Quantity: 0.5, Unit: "cup"},
			{FoodName: "cherry tomatoes", Quantity: 0.5, Unit: "cup"},
			{FoodName: "feta cheese", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "olive oil", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "lemon juice", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "fresh parsley", Quantity: 2, Unit: "tablespoons"},
		},
	},
	{
		Key:      "tuna_salad",
		Name:     "Tuna Salad",
		Category: "lunch",
		Ingredients: []Ingredient{
			{FoodName: "canned tuna", Quantity: 1, Unit: "can"},
			{FoodName: "celery", Quantity: 0.25, Unit: "cup"},
			{FoodName: "red onion", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "mayonnaise", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "dijon mustard", Quantity: 1, Unit: "teaspoon"},
			{FoodName: "mixed greens", Quantity: 2, Unit: "cups"},
			{FoodName: "whole wheat crackers", Quantity: 6, Unit: "pieces"},
		},
	},

	// Dinner
	{
		Key:      "grilled_salmon",
		Name:     "Grilled Salmon with Vegetables",
		Category: "dinner",
		Ingredients: []Ingredient{
			{FoodName: "salmon fillet", Quantity: 6, Unit: "ounces"},
			{FoodName: "broccoli", Quantity: 1, Unit: "cup"},
			{FoodName: "brown rice", Quantity: 0.5, Unit: "cup"},
			{FoodName: "olive oil", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "lemon", Quantity: 0.5, Unit: "piece"},
			{FoodName: "garlic", Quantity: 2, Unit: "cloves"},
			{FoodName: "salt", Quantity: 0.5, Unit: "teaspoon"},
			{FoodName: "black pepper", Quantity: 0.25, Unit: "teaspoon"},
		},
	},
	{
		Key:      "chicken_stir_fry",
		Name:     "Chicken Stir Fry",
		Category: "dinner",
		Ingredients: []Ingredient{
			{FoodName: "chicken breast", Quantity: 5, Unit: "ounces"},
			{FoodName: "mixed vegetables", Quantity: 2, Unit: "cups"},
			{FoodName: "soy sauce", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "sesame oil", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "ginger", Quantity: 1, Unit: "teaspoon"},
			{FoodName: "garlic", Quantity: 2, Unit: "cloves"},
			{FoodName: "brown rice", Quantity: 0.75, Unit: "cup"},
			{FoodName: "green onions", Quantity: 2, Unit: "stalks"},
		},
	},
	{
		Key:      "spaghetti_marinara",
		Name:     "Spaghetti with Marinara Sauce",
		Category: "dinner",
		Ingredients: []Ingredient{
			{FoodName: "whole wheat spaghetti", Quantity: 2, Unit: "ounces"},
			{FoodName: "marinara sauce", Quantity: 0.75, Unit: "cup"},
			{FoodName: "ground turkey", Quantity: 4, Unit: "ounces"},
			{FoodName: "parmesan cheese", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "olive oil", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "garlic", Quantity: 2, Unit: "cloves"},
			{FoodName: "italian seasoning", Quantity: 1, Unit: "teaspoon"},
			{FoodName: "fresh basil", Quantity: 2, Unit: "tablespoons"},
		},
	},
	{
		Key:      "beef_tacos",
		Name:     "Beef Tacos",
		Category: "dinner",
		Ingredients: []Ingredient{
			{FoodName: "lean ground beef", Quantity: 4, Unit: "ounces"},
			{FoodName: "corn tortillas", Quantity: 3, Unit: "small"},
			{FoodName: "shredded lettuce", Quantity: 0.5, Unit: "cup"},
			{FoodName: "diced tomatoes", Quantity: 0.25, Unit: "cup"},
			{FoodName: "shredded cheese", Quantity: 0.25, Unit: "cup"},
			{FoodName: "sour cream", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "salsa", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "taco seasoning", Quantity: 1, Unit: "tablespoon"},
		},
	},

	// Snacks
	{
		Key:      "hummus_veggies",
		Name:     "Hummus with Vegetables",
		Category: "snack",
		Ingredients: []Ingredient{
			{FoodName: "hummus", Quantity: 0.25, Unit: "cup"},
			{FoodName: "baby carrots", Quantity: 1, Unit: "cup"},
			{FoodName: "cucumber slices", Quantity: 0.5, Unit: "cup"},
			{FoodName: "bell pepper strips", Quantity: 0.5, Unit: "cup"},
		},
	},
	{
		Key:      "apple_peanut_butter",
		Name:     "Apple with Peanut Butter",
		Category: "snack",
		Ingredients: []Ingredient{
			{FoodName: "apple", Quantity: 1, Unit: "medium"},
			{FoodName: "peanut butter", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "cinnamon", Quantity: 0.125, Unit: "teaspoon"},
		},
	},
	{
		Key:      "trail_mix",
		Name:     "Trail Mix",
		Category: "snack",
		Ingredients: []Ingredient{
			{FoodName: "almonds", Quantity: 0.25, Unit: "cup"},
			{FoodName: "cashews", Quantity: 0.25, Unit: "cup"},
			{FoodName: "raisins", Quantity: 2, Unit: "tablespoons"},
			{FoodName: "dark chocolate chips", Quantity: 1, Unit: "tablespoon"},
			{FoodName: "dried cranberries", Quantity: 1, Unit: "tablespoon"},
		},
	},
	{
		Key:      "protein_smoothie",
		Name:     "Protein Smoothie",
		Category: "snack",
		Ingredients: []Ingredient{
			{FoodName: "protein powder", Quantity: 1, Unit: "scoop"},
			{FoodName: "banana", Quantity: 1, Unit: "medium"},
			{FoodName: "almond milk", Quantity: 1, Unit: "cup"},
			{FoodName: "spinach", Quantity: 1, Unit: "cup"},
			{FoodName: "frozen berries", Quantity: 0.5, Unit: "cup"},
			{FoodName: "chia seeds", Quantity: 1, Unit: "tablespoon"},
		},
	},
	{
		Key:      "cheese_crackers",
		Name:     "Cheese and Crackers",
		Category: "snack",
		Ingredients: []Ingredient{
			{FoodName: "whole grain crackers", Quantity: 10, Unit: "pieces"},
			{FoodName: "cheddar cheese", Quantity: 2, Unit: "ounces"},
			{FoodName: "grapes", Quantity: 0.5, Unit: "cup"},
		},
	},
}
