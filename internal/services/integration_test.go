package services_test

import (
	"errors"
	"testing"

	"github.com/localnerve/pantrydb/internal/database"
	"github.com/localnerve/pantrydb/internal/models"
	"github.com/localnerve/pantrydb/internal/services"
	"github.com/localnerve/pantrydb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestWithDatabases runs the service layer against real PostgreSQL and MariaDB servers
// initialized from data/initdb
func TestWithDatabases(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	for _, dbType := range []string{"postgres", "mariadb"} {
		t.Run(dbType, func(t *testing.T) {
			settings := testutil.DatabaseSettingsFromEnv(dbType)
			tc, err := testutil.StartDatabase(t, settings)
			require.NoError(t, err)
			t.Cleanup(func() { tc.Terminate(t) })

			db, err := database.Connect(tc.Config(), zap.NewNop())
			require.NoError(t, err)
			t.Cleanup(func() { database.Close(db) })

			// the server migrates at startup by default; the initdb schema must already satisfy the models
			require.NoError(t, database.AutoMigrate(db))
			assert.True(t, db.Migrator().HasConstraint(&models.InventoryEntry{}, "Household"))
			assert.True(t, db.Migrator().HasConstraint(&models.MealPlanRecipe{}, "Plan"))
			assert.True(t, db.Migrator().HasConstraint(&models.GroceryListEntry{}, "Grocery"))
			assert.True(t, db.Migrator().HasConstraint(&models.MealPlan{}, "Household"))

			// every service call runs on one pinned connection, as in a request
			require.NoError(t, db.Connection(func(conn *gorm.DB) error {
				runPantryScenario(t, conn.Session(&gorm.Session{NewDB: true}))
				return nil
			}))
		})
	}
}

func ingredientByName(t *testing.T, db *gorm.DB, name string) models.Ingredient {
	t.Helper()
	var ingredient models.Ingredient
	require.NoError(t, db.Where("ingredient_name = ?", name).First(&ingredient).Error)
	return ingredient
}

func recipeByName(t *testing.T, db *gorm.DB, name string) models.Recipe {
	t.Helper()
	var recipe models.Recipe
	require.NoError(t, db.Where("recipe_name = ?", name).First(&recipe).Error)
	return recipe
}

func runPantryScenario(t *testing.T, db *gorm.DB) {
	recipes, err := services.ListRecipes(db)
	require.NoError(t, err)
	require.Len(t, recipes, 4)

	household, err := services.CreateHousehold(db, "Integration")
	require.NoError(t, err)
	hid := household.HouseholdID

	egg := ingredientByName(t, db, "Egg")
	butter := ingredientByName(t, db, "Butter")
	omelette := recipeByName(t, db, "Omelette")
	pancakes := recipeByName(t, db, "Pancakes")

	// upsert accumulates and keeps the catalog unit
	_, err = services.AddInventory(db, hid, egg.IngredientID, 4)
	require.NoError(t, err)
	_, err = services.AddInventory(db, hid, egg.IngredientID, 2)
	require.NoError(t, err)
	_, err = services.AddInventory(db, hid, butter.IngredientID, 125)
	require.NoError(t, err)

	inventory, err := services.GetInventory(db, hid)
	require.NoError(t, err)
	require.Len(t, inventory.Inventory, 2)
	assert.Equal(t, "Butter", inventory.Inventory[0].IngredientName)
	assert.InDelta(t, 6, inventory.Inventory[1].Quantity, 1e-9)
	assert.Equal(t, "pc", inventory.Inventory[1].Unit)

	cookable, err := services.ListCookableRecipes(db, hid)
	require.NoError(t, err)
	require.Len(t, cookable.Recipes, 1)
	assert.Equal(t, omelette.RecipeID, cookable.Recipes[0].RecipeID)

	// meal plan with merged groceries
	plan, err := services.CreateMealPlan(db, hid, pancakes.RecipeID, "Integration week")
	require.NoError(t, err)
	_, added, err := services.AddRecipesToPlan(db, plan.PlanID, []uint64{omelette.RecipeID, pancakes.RecipeID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), added)

	plans, err := services.GetMealPlans(db, hid)
	require.NoError(t, err)
	require.Len(t, plans.Plans, 1)
	assert.Equal(t, []string{"Omelette", "Pancakes"}, plans.Plans[0].Recipes)
	for _, line := range plans.Plans[0].Groceries {
		if line.IngredientName == "Egg" {
			assert.InDelta(t, 5, line.Quantity, 1e-9)
		}
	}

	// the store refuses to drop a household that still has rows
	_, err = services.DeleteHousehold(db, hid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrForeignKeyViolated), "expected a foreign key violation, got %v", err)

	_, rows, err := services.DeleteMealPlan(db, plan.PlanID)
	require.NoError(t, err)
	assert.Positive(t, rows)
	require.NoError(t, db.Where("household_id = ?", hid).Delete(&models.InventoryEntry{}).Error)

	_, err = services.DeleteHousehold(db, hid)
	require.NoError(t, err)
}
