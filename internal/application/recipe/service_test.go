package recipe_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	apprecipe "github.com/larderly/v2/internal/application/recipe"
	"github.com/larderly/v2/internal/domain/mealplan"
	"github.com/larderly/v2/internal/domain/recipe"
	gormRepo "github.com/larderly/v2/internal/infrastructure/persistence/gorm"
	"github.com/larderly/v2/internal/infrastructure/persistence/memory"
	"github.com/larderly/v2/internal/ports/inbound"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/larderly/v2/pkg/errors"
	"github.com/larderly/v2/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	service       inbound.RecipeService
	inventoryRepo outbound.InventoryRepository
	mealPlanRepo  outbound.MealPlanRepository
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutils.SetupTestDatabase(t)
	recipeRepo := gormRepo.NewRecipeRepository(db)
	inventoryRepo := gormRepo.NewInventoryRepository(db)
	mealPlanRepo := gormRepo.NewMealPlanRepository(db)
	tx := gormRepo.NewTransactionManager(db)
	sessions := memory.NewSessionStore()

	service := apprecipe.NewService(recipeRepo, inventoryRepo, mealPlanRepo, sessions, tx, 15*time.Minute, zap.NewNop())

	return &fixture{
		service:       service,
		inventoryRepo: inventoryRepo,
		mealPlanRepo:  mealPlanRepo,
	}
}

func createCommand(name string) inbound.CreateRecipeCommand {
	return inbound.CreateRecipeCommand{
		OwnerID:  "owner-1",
		Name:     name,
		Servings: 2,
		Ingredients: []inbound.IngredientCommand{
			{FoodName: "chicken breast", Quantity: 1, Unit: "pounds"},
			{FoodName: "rice", Quantity: 2, Unit: "cups"},
			{FoodName: "soy sauce", Quantity: 2, Unit: "tablespoons", Optional: true},
		},
	}
}

func stockInventory(t *testing.T, f *fixture, foods map[string]float64) {
	t.Helper()
	ctx := context.Background()
	for food, quantity := range foods {
		item := testutils.NewItemBuilder().WithOwner("owner-1").WithFood(food).WithQuantity(quantity, "units").Build(t)
		require.NoError(t, f.inventoryRepo.Save(ctx, item))
	}
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("creates recipe with ingredients", func(t *testing.T) {
		f := setup(t)

		dto, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		assert.Equal(t, "Chicken Stir Fry", dto.Name)
		require.Len(t, dto.Ingredients, 3)
		assert.Equal(t, "chicken breast", dto.Ingredients[0].FoodName)
		assert.True(t, dto.Ingredients[2].Optional)
	})

	t.Run("rejects duplicate name per owner", func(t *testing.T) {
		f := setup(t)

		_, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		_, err = f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		assert.True(t, errors.IsCode(err, errors.CodeDuplicateRecipeName))
	})

	t.Run("same name under another owner is allowed", func(t *testing.T) {
		f := setup(t)

		_, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		cmd := createCommand("Chicken Stir Fry")
		cmd.OwnerID = "owner-2"
		_, err = f.service.CreateRecipe(ctx, cmd)
		assert.NoError(t, err)
	})

	t.Run("rejects empty ingredient list", func(t *testing.T) {
		f := setup(t)

		cmd := createCommand("Empty")
		cmd.Ingredients = nil
		_, err := f.service.CreateRecipe(ctx, cmd)
		assert.True(t, errors.IsCode(err, errors.CodeValidationFailed))
	})

	t.Run("rejects non-positive ingredient quantity", func(t *testing.T) {
		f := setup(t)

		cmd := createCommand("Bad Quantity")
		cmd.Ingredients[0].Quantity = 0
		_, err := f.service.CreateRecipe(ctx, cmd)
		assert.True(t, errors.IsCode(err, errors.CodeInvalidQuantity))
	})
}

func TestUpdateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces only the provided fields", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		servings := 4
		calories := 450
		updated, err := f.service.UpdateRecipe(ctx, inbound.UpdateRecipeCommand{
			OwnerID:            "owner-1",
			RecipeID:           created.ID,
			Servings:           &servings,
			CaloriesPerServing: &calories,
		})
		require.NoError(t, err)

		assert.Equal(t, "Chicken Stir Fry", updated.Name, "untouched fields survive")
		assert.Equal(t, 4, updated.Servings)
		require.NotNil(t, updated.CaloriesPerServing)
		assert.Equal(t, 450, *updated.CaloriesPerServing)
		assert.Len(t, updated.Ingredients, 3)
	})

	t.Run("non-nil ingredient list swaps the whole list", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		ingredients := []inbound.IngredientCommand{
			{FoodName: "tofu", Quantity: 1, Unit: "blocks"},
		}
		updated, err := f.service.UpdateRecipe(ctx, inbound.UpdateRecipeCommand{
			OwnerID:     "owner-1",
			RecipeID:    created.ID,
			Ingredients: &ingredients,
		})
		require.NoError(t, err)

		require.Len(t, updated.Ingredients, 1)
		assert.Equal(t, "tofu", updated.Ingredients[0].FoodName)

		// The replacement is persisted, not just reflected in the DTO.
		fetched, err := f.service.GetRecipe(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Ingredients, 1)
	})

	t.Run("rename collides with an existing name", func(t *testing.T) {
		f := setup(t)

		_, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)
		second, err := f.service.CreateRecipe(ctx, createCommand("Fried Rice"))
		require.NoError(t, err)

		name := "Chicken Stir Fry"
		_, err = f.service.UpdateRecipe(ctx, inbound.UpdateRecipeCommand{
			OwnerID:  "owner-1",
			RecipeID: second.ID,
			Name:     &name,
		})
		assert.True(t, errors.IsCode(err, errors.CodeDuplicateRecipeName))
	})

	t.Run("another owner's recipe is not found", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		name := "Stolen"
		_, err = f.service.UpdateRecipe(ctx, inbound.UpdateRecipeCommand{
			OwnerID:  "owner-2",
			RecipeID: created.ID,
			Name:     &name,
		})
		assert.True(t, errors.IsCode(err, errors.CodeRecipeNotFound))
	})
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced recipe", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		deleted, err := f.service.DeleteRecipe(ctx, "owner-1", created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = f.service.GetRecipe(ctx, created.ID)
		assert.True(t, errors.IsCode(err, errors.CodeRecipeNotFound))
	})

	t.Run("absent recipe reports false without error", func(t *testing.T) {
		f := setup(t)

		deleted, err := f.service.DeleteRecipe(ctx, "owner-1", uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("refuses while meal plan entries reference it", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		entry, err := mealplan.NewEntry("owner-1", created.ID, time.Now(), mealplan.MealTypeDinner, 2)
		require.NoError(t, err)
		require.NoError(t, f.mealPlanRepo.Create(ctx, entry))

		_, err = f.service.DeleteRecipe(ctx, "owner-1", created.ID)
		assert.True(t, errors.IsCode(err, errors.CodeRecipeInUse))

		// Still there.
		_, err = f.service.GetRecipe(ctx, created.ID)
		assert.NoError(t, err)
	})
}

func TestImportPresets(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	imported, err := f.service.ImportPresets(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, len(recipe.Presets()), imported)

	recipes, err := f.service.ListRecipes(ctx, "owner-1", []string{"preset"})
	require.NoError(t, err)
	assert.Len(t, recipes, imported)

	// Importing again skips everything.
	imported, err = f.service.ImportPresets(ctx, "owner-1")
	require.NoError(t, err)
	assert.Zero(t, imported)
}

func TestListRecipes(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	cmd := createCommand("Chicken Stir Fry")
	cmd.Tags = []string{"dinner", "asian"}
	_, err := f.service.CreateRecipe(ctx, cmd)
	require.NoError(t, err)

	cmd = createCommand("Overnight Oats")
	cmd.Tags = []string{"breakfast"}
	_, err = f.service.CreateRecipe(ctx, cmd)
	require.NoError(t, err)

	all, err := f.service.ListRecipes(ctx, "owner-1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tagged, err := f.service.ListRecipes(ctx, "owner-1", []string{"asian", "vegan"})
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "Chicken Stir Fry", tagged[0].Name)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies ingredients against inventory totals", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		stockInventory(t, f, map[string]float64{
			"chicken breast": 0.5,
			"rice":           2,
		})

		report, err := f.service.CheckAvailability(ctx, "owner-1", created.ID)
		require.NoError(t, err)

		assert.False(t, report.CanMake)
		assert.Empty(t, report.Missing)
		require.Len(t, report.Partial, 1)
		assert.Equal(t, "chicken breast", report.Partial[0].FoodName)
		assert.Equal(t, 0.5, report.Partial[0].Available)
		assert.Equal(t, 0.5, report.Partial[0].Needed)
	})

	t.Run("optional ingredients never block", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		// Everything except the optional soy sauce.
		stockInventory(t, f, map[string]float64{
			"chicken breast": 1,
			"rice":           2,
		})

		report, err := f.service.CheckAvailability(ctx, "owner-1", created.ID)
		require.NoError(t, err)

		assert.True(t, report.CanMake)
		assert.Len(t, report.Ingredients, 3, "optional ingredients still appear in the full listing")
	})

	t.Run("another owner's recipe is not found", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		_, err = f.service.CheckAvailability(ctx, "owner-2", created.ID)
		assert.True(t, errors.IsCode(err, errors.CodeRecipeNotFound))
	})
}

func TestListAvailableRecipes(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	stirFry, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
	require.NoError(t, err)

	omelette, err := f.service.CreateRecipe(ctx, inbound.CreateRecipeCommand{
		OwnerID:  "owner-1",
		Name:     "Omelette",
		Servings: 1,
		Ingredients: []inbound.IngredientCommand{
			{FoodName: "eggs", Quantity: 3, Unit: "large"},
		},
	})
	require.NoError(t, err)

	stockInventory(t, f, map[string]float64{"eggs": 5})

	available, err := f.service.ListAvailableRecipes(ctx, "owner-1")
	require.NoError(t, err)

	require.Len(t, available, 1)
	assert.Equal(t, "Omelette", available[0].Name)

	// The list agrees with per-recipe checks.
	report, err := f.service.CheckAvailability(ctx, "owner-1", omelette.ID)
	require.NoError(t, err)
	assert.True(t, report.CanMake)

	report, err = f.service.CheckAvailability(ctx, "owner-1", stirFry.ID)
	require.NoError(t, err)
	assert.False(t, report.CanMake)
}

func TestLastAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored snapshot", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)

		report, err := f.service.CheckAvailability(ctx, "owner-1", created.ID)
		require.NoError(t, err)

		snapshot, err := f.service.LastAvailability(ctx, "owner-1")
		require.NoError(t, err)

		require.NotNil(t, snapshot)
		assert.Equal(t, report.RecipeID, snapshot.RecipeID)
		assert.Equal(t, report.CanMake, snapshot.CanMake)
		assert.Equal(t, len(report.Missing), len(snapshot.Missing))
	})

	t.Run("nil when nothing was stored", func(t *testing.T) {
		f := setup(t)

		snapshot, err := f.service.LastAvailability(ctx, "owner-1")
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("snapshots are per owner", func(t *testing.T) {
		f := setup(t)

		created, err := f.service.CreateRecipe(ctx, createCommand("Chicken Stir Fry"))
		require.NoError(t, err)
		_, err = f.service.CheckAvailability(ctx, "owner-1", created.ID)
		require.NoError(t, err)

		snapshot, err := f.service.LastAvailability(ctx, "owner-2")
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}
