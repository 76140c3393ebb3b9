package shopping_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	appshopping "github.com/larderly/v2/internal/application/shopping"
	"github.com/larderly/v2/internal/domain/mealplan"
	gormRepo "github.com/larderly/v2/internal/infrastructure/persistence/gorm"
	"github.com/larderly/v2/internal/ports/inbound"
	"github.com/larderly/v2/internal/ports/outbound"
	"github.com/larderly/v2/pkg/errors"
	"github.com/larderly/v2/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	service       inbound.ShoppingService
	recipeRepo    outbound.RecipeRepository
	mealPlanRepo  outbound.MealPlanRepository
	inventoryRepo outbound.InventoryRepository
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutils.SetupTestDatabase(t)
	shoppingRepo := gormRepo.NewShoppingListRepository(db)
	mealPlanRepo := gormRepo.NewMealPlanRepository(db)
	recipeRepo := gormRepo.NewRecipeRepository(db)
	inventoryRepo := gormRepo.NewInventoryRepository(db)
	tx := gormRepo.NewTransactionManager(db)

	return &fixture{
		service:       appshopping.NewService(shoppingRepo, mealPlanRepo, recipeRepo, inventoryRepo, tx, zap.NewNop()),
		recipeRepo:    recipeRepo,
		mealPlanRepo:  mealPlanRepo,
		inventoryRepo: inventoryRepo,
	}
}

var window = struct {
	start time.Time
	end   time.Time
}{
	start: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	end:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
}

func (f *fixture) plan(t *testing.T, recipeID uuid.UUID, date time.Time, servings int) *mealplan.Entry {
	t.Helper()

	entry, err := mealplan.NewEntry("owner-1", recipeID, date, mealplan.MealTypeDinner, servings)
	require.NoError(t, err)
	require.NoError(t, f.mealPlanRepo.Create(context.Background(), entry))
	return entry
}

func (f *fixture) stock(t *testing.T, food string, quantity float64, unit string) {
	t.Helper()

	item := testutils.NewItemBuilder().WithOwner("owner-1").WithFood(food).WithQuantity(quantity, unit).Build(t)
	require.NoError(t, f.inventoryRepo.Save(context.Background(), item))
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates requirements across entries and subtracts inventory", func(t *testing.T) {
		f := setup(t)

		friedRice := testutils.NewRecipeBuilder().
			WithOwner("owner-1").
			WithName("Fried Rice").
			WithIngredient("rice", 2, "cups").
			WithIngredient("eggs", 2, "large").
			Build(t)
		require.NoError(t, f.recipeRepo.Create(ctx, friedRice))

		f.plan(t, friedRice.ID(), window.start, 1)
		f.plan(t, friedRice.ID(), window.start.AddDate(0, 0, 2), 1)

		f.stock(t, "rice", 1, "cups")
		f.stock(t, "eggs", 12, "large")

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID:   "owner-1",
			StartDate: window.start,
			EndDate:   window.end,
		})
		require.NoError(t, err)

		// 2+2 cups of rice needed, 1 on hand; eggs fully covered.
		require.Len(t, dto.Items, 1)
		assert.Equal(t, "rice", dto.Items[0].FoodName)
		assert.Equal(t, 3.0, dto.Items[0].Quantity)
		assert.Equal(t, "grains", dto.Items[0].Category)
	})

	t.Run("scales by servings", func(t *testing.T) {
		f := setup(t)

		rec := testutils.NewRecipeBuilder().
			WithOwner("owner-1").
			WithName("Omelette").
			WithIngredient("eggs", 3, "large").
			Build(t)
		require.NoError(t, f.recipeRepo.Create(ctx, rec))

		f.plan(t, rec.ID(), window.start, 4)

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end,
		})
		require.NoError(t, err)

		require.Len(t, dto.Items, 1)
		assert.Equal(t, 12.0, dto.Items[0].Quantity)
	})

	t.Run("completed entries are skipped", func(t *testing.T) {
		f := setup(t)

		rec := testutils.NewRecipeBuilder().
			WithOwner("owner-1").
			WithName("Omelette").
			WithIngredient("eggs", 3, "large").
			Build(t)
		require.NoError(t, f.recipeRepo.Create(ctx, rec))

		entry := f.plan(t, rec.ID(), window.start, 1)
		entry.Complete()
		require.NoError(t, f.mealPlanRepo.Update(ctx, entry))

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end,
		})
		require.NoError(t, err)
		assert.Empty(t, dto.Items)
	})

	t.Run("optional ingredients never appear", func(t *testing.T) {
		f := setup(t)

		rec := testutils.NewRecipeBuilder().
			WithOwner("owner-1").
			WithName("Stir Fry").
			WithIngredient("rice", 1, "cups").
			WithOptionalIngredient("sesame seeds", 1, "tablespoons").
			Build(t)
		require.NoError(t, f.recipeRepo.Create(ctx, rec))

		f.plan(t, rec.ID(), window.start, 1)

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end,
		})
		require.NoError(t, err)

		require.Len(t, dto.Items, 1)
		assert.Equal(t, "rice", dto.Items[0].FoodName)
	})

	t.Run("covered requirements yield an empty list", func(t *testing.T) {
		f := setup(t)

		rec := testutils.NewRecipeBuilder().
			WithOwner("owner-1").
			WithName("Omelette").
			WithIngredient("eggs", 3, "large").
			Build(t)
		require.NoError(t, f.recipeRepo.Create(ctx, rec))

		f.plan(t, rec.ID(), window.start, 1)
		f.stock(t, "eggs", 12, "large")

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end,
		})
		require.NoError(t, err)

		assert.Empty(t, dto.Items, "the empty list is still created and returned")

		fetched, err := f.service.Fetch(ctx, dto.ID)
		require.NoError(t, err)
		assert.Empty(t, fetched.Items)
	})

	t.Run("default name carries the start date", func(t *testing.T) {
		f := setup(t)

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end,
		})
		require.NoError(t, err)
		assert.Equal(t, "Shopping List 2026-09-07", dto.Name)

		named, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end, Name: "Big Shop",
		})
		require.NoError(t, err)
		assert.Equal(t, "Big Shop", named.Name)
	})

	t.Run("items come back ordered by category then food", func(t *testing.T) {
		f := setup(t)

		rec := testutils.NewRecipeBuilder().
			WithOwner("owner-1").
			WithName("Full Dinner").
			WithIngredient("rice", 1, "cups").
			WithIngredient("chicken breast", 1, "pounds").
			WithIngredient("broccoli", 1, "heads").
			Build(t)
		require.NoError(t, f.recipeRepo.Create(ctx, rec))

		f.plan(t, rec.ID(), window.start, 1)

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end,
		})
		require.NoError(t, err)

		require.Len(t, dto.Items, 3)
		assert.Equal(t, "rice", dto.Items[0].FoodName, "grains sort before meat and produce")
		assert.Equal(t, "chicken breast", dto.Items[1].FoodName)
		assert.Equal(t, "broccoli", dto.Items[2].FoodName)
	})
}

func TestCheckItem(t *testing.T) {
	ctx := context.Background()

	t.Run("toggles the purchased flag", func(t *testing.T) {
		f := setup(t)

		rec := testutils.NewRecipeBuilder().
			WithOwner("owner-1").
			WithName("Omelette").
			WithIngredient("eggs", 3, "large").
			Build(t)
		require.NoError(t, f.recipeRepo.Create(ctx, rec))
		f.plan(t, rec.ID(), window.start, 1)

		dto, err := f.service.Generate(ctx, inbound.GenerateShoppingListCommand{
			OwnerID: "owner-1", StartDate: window.start, EndDate: window.end,
		})
		require.NoError(t, err)
		require.Len(t, dto.Items, 1)

		affected, err := f.service.CheckItem(ctx, dto.Items[0].ID, true)
		require.NoError(t, err)
		assert.True(t, affected)

		fetched, err := f.service.Fetch(ctx, dto.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Items, 1)
		assert.True(t, fetched.Items[0].Checked)
	})

	t.Run("unknown item reports false", func(t *testing.T) {
		f := setup(t)

		affected, err := f.service.CheckItem(ctx, uuid.New(), true)
		require.NoError(t, err)
		assert.False(t, affected)
	})
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.service.Fetch(ctx, uuid.New())
	assert.True(t, errors.IsCode(err, errors.CodeShoppingListNotFound))
}
