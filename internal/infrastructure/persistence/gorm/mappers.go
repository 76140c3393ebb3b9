package gorm

import (
	"sort"

	"github.com/larderly/v2/internal/domain/inventory"
	"github.com/larderly/v2/internal/domain/mealplan"
	"github.com/larderly/v2/internal/domain/recipe"
	"github.com/larderly/v2/internal/domain/shopping"
)

// ItemToModel converts an inventory item entity to its GORM model
func ItemToModel(item *inventory.Item) *InventoryItemModel {
	return &InventoryItemModel{
		ID:             item.ID(),
		OwnerID:        item.OwnerID(),
		FoodName:       item.FoodName(),
		Quantity:       item.Quantity(),
		Unit:           item.Unit(),
		Location:       string(item.Location()),
		ExpirationDate: item.ExpirationDate(),
		PurchaseDate:   item.PurchaseDate(),
		Cost:           item.Cost(),
		CreatedAt:      item.CreatedAt(),
		UpdatedAt:      item.UpdatedAt(),
	}
}

// ModelToItem converts a GORM model back to an inventory item entity
func ModelToItem(model *InventoryItemModel) *inventory.Item {
	return inventory.Reconstitute(
		model.ID,
		model.OwnerID,
		model.FoodName,
		model.Quantity,
		model.Unit,
		inventory.Location(model.Location),
		model.ExpirationDate,
		model.PurchaseDate,
		model.Cost,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// RecipeToModel converts a recipe entity to its GORM model, ingredient rows
// included
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make([]RecipeIngredientModel, 0, len(r.Ingredients()))
	for i, ing := range r.Ingredients() {
		ingredients = append(ingredients, RecipeIngredientModel{
			RecipeID: r.ID(),
			Position: i,
			FoodName: ing.FoodName,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		})
	}

	return &RecipeModel{
		ID:                 r.ID(),
		OwnerID:            r.OwnerID(),
		Name:               r.Name(),
		Description:        r.Description(),
		Servings:           r.Servings(),
		PrepTimeMinutes:    r.PrepTimeMinutes(),
		CookTimeMinutes:    r.CookTimeMinutes(),
		CaloriesPerServing: r.CaloriesPerServing(),
		ProteinPerServing:  r.ProteinPerServing(),
		Instructions:       r.Instructions(),
		Tags:               StringSlice(r.Tags()),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
		Ingredients:        ingredients,
	}
}

// ModelToRecipe converts a GORM model back to a recipe entity, restoring the
// authored ingredient order
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	sort.Slice(model.Ingredients, func(a, b int) bool {
		return model.Ingredients[a].Position < model.Ingredients[b].Position
	})

	ingredients := make([]recipe.Ingredient, 0, len(model.Ingredients))
	for _, ing := range model.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			FoodName: ing.FoodName,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		})
	}

	return recipe.Reconstitute(
		model.ID,
		model.OwnerID,
		model.Name,
		model.Description,
		model.Servings,
		model.PrepTimeMinutes,
		model.CookTimeMinutes,
		model.CaloriesPerServing,
		model.ProteinPerServing,
		model.Instructions,
		[]string(model.Tags),
		ingredients,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// EntryToModel converts a meal plan entry entity to its GORM model
func EntryToModel(entry *mealplan.Entry) *MealPlanEntryModel {
	return &MealPlanEntryModel{
		ID:          entry.ID(),
		OwnerID:     entry.OwnerID(),
		RecipeID:    entry.RecipeID(),
		PlannedDate: entry.PlannedDate(),
		MealType:    string(entry.MealType()),
		Servings:    entry.Servings(),
		Completed:   entry.Completed(),
		CreatedAt:   entry.CreatedAt(),
	}
}

// ModelToEntry converts a GORM model back to a meal plan entry entity
func ModelToEntry(model *MealPlanEntryModel) *mealplan.Entry {
	return mealplan.Reconstitute(
		model.ID,
		model.OwnerID,
		model.RecipeID,
		model.PlannedDate,
		mealplan.MealType(model.MealType),
		model.Servings,
		model.Completed,
		model.CreatedAt,
	)
}

// ListToModel converts a shopping list entity to its GORM model
func ListToModel(list *shopping.List) *ShoppingListModel {
	items := make([]ShoppingListItemModel, 0, len(list.Items()))
	for _, item := range list.Items() {
		items = append(items, ShoppingListItemModel{
			ID:       item.ID,
			ListID:   list.ID(),
			FoodName: item.FoodName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Category: string(item.Category),
			Checked:  item.Checked,
		})
	}

	return &ShoppingListModel{
		ID:          list.ID(),
		OwnerID:     list.OwnerID(),
		Name:        list.Name(),
		CreatedDate: list.CreatedDate(),
		Items:       items,
	}
}

// ModelToList converts a GORM model back to a shopping list entity
func ModelToList(model *ShoppingListModel) *shopping.List {
	items := make([]shopping.ListItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, shopping.ListItem{
			ID:       item.ID,
			FoodName: item.FoodName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Category: shopping.Category(item.Category),
			Checked:  item.Checked,
		})
	}

	return shopping.Reconstitute(model.ID, model.OwnerID, model.Name, model.CreatedDate, items)
}
