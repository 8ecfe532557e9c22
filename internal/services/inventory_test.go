package services

import (
	"math"
	"testing"

	"github.com/localnerve/pantrydb/internal/models"
	"github.com/localnerve/pantrydb/internal/testutil"
	"github.com/localnerve/pantrydb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInventoryAccumulates(t *testing.T) {
	db := testutil.NewTestDB(t)
	k := testutil.SeedKitchen(t, db)
	household := testutil.CreateHousehold(t, db, "Smith")

	_, err := AddInventory(db, household.HouseholdID, k.Flour.IngredientID, 500)
	require.NoError(t, err)
	_, err = AddInventory(db, household.HouseholdID, k.Flour.IngredientID, 250.5)
	require.NoError(t, err)

	var entries []models.InventoryEntry
	require.NoError(t, db.Where("household_id = ?", household.HouseholdID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.InDelta(t, 750.5, entries[0].Quantity, 1e-9)
	assert.Equal(t, "g", entries[0].Unit)
}

func TestAddInventoryRefreshesUnit(t *testing.T) {
	db := testutil.NewTestDB(t)
	k := testutil.SeedKitchen(t, db)
	household := testutil.CreateHousehold(t, db, "Smith")

	require.NoError(t, db.Create(&models.InventoryEntry{
		HouseholdID:  household.HouseholdID,
		IngredientID: k.Milk.IngredientID,
		Quantity:     1,
		Unit:         "cup",
	}).Error)

	_, err := AddInventory(db, household.HouseholdID, k.Milk.IngredientID, 100)
	require.NoError(t, err)

	var entry models.InventoryEntry
	require.NoError(t, db.Where("household_id = ? AND ingredient_id = ?", household.HouseholdID, k.Milk.IngredientID).First(&entry).Error)
	assert.InDelta(t, 101, entry.Quantity, 1e-9)
	assert.Equal(t, "ml", entry.Unit)
}

func TestAddInventoryErrors(t *testing.T) {
	db := testutil.NewTestDB(t)
	k := testutil.SeedKitchen(t, db)
	household := testutil.CreateHousehold(t, db, "Smith")

	tests := []struct {
		name      string
		hid, iid  uint64
		quantity  float64
		errorType string
	}{
		{"missing household", 0, k.Egg.IngredientID, 1, types.KindValidation},
		{"missing ingredient", household.HouseholdID, 0, 1, types.KindValidation},
		{"not a number", household.HouseholdID, k.Egg.IngredientID, math.NaN(), types.KindValidation},
		{"unknown household", 999, k.Egg.IngredientID, 1, types.KindNotFound},
		{"unknown ingredient", household.HouseholdID, 999, 1, types.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddInventory(db, tt.hid, tt.iid, tt.quantity)
			ce, ok := types.AsCustomError(err)
			require.True(t, ok, "expected CustomError, got %v", err)
			assert.Equal(t, tt.errorType, ce.Type)
		})
	}

	assert.Zero(t, testutil.Count(t, db, "household_in_inventory_ingredient"))
}

func TestGetInventory(t *testing.T) {
	db := testutil.NewTestDB(t)
	k := testutil.SeedKitchen(t, db)
	smith := testutil.CreateHousehold(t, db, "Smith")
	jones := testutil.CreateHousehold(t, db, "Jones")
	testutil.Stock(t, db, smith, k.Milk, 1000)
	testutil.Stock(t, db, smith, k.Butter, 250)
	testutil.Stock(t, db, jones, k.Egg, 12)

	view, err := GetInventory(db, smith.HouseholdID)
	require.NoError(t, err)

	require.Len(t, view.Ingredients, 4)
	assert.Equal(t, "Butter", view.Ingredients[0].IngredientName)
	assert.Equal(t, "Milk", view.Ingredients[3].IngredientName)

	require.Len(t, view.Inventory, 2)
	assert.Equal(t, "Butter", view.Inventory[0].IngredientName)
	assert.InDelta(t, 250, view.Inventory[0].Quantity, 1e-9)
	assert.Equal(t, "g", view.Inventory[0].Unit)
	assert.Equal(t, "Milk", view.Inventory[1].IngredientName)

	// default selection is Jones, first by name
	view, err = GetInventory(db, 0)
	require.NoError(t, err)
	require.NotNil(t, view.SelectedHouseholdID)
	assert.Equal(t, jones.HouseholdID, *view.SelectedHouseholdID)
	require.Len(t, view.Inventory, 1)
	assert.Equal(t, "Egg", view.Inventory[0].IngredientName)
}

func TestGetInventoryWithoutHouseholds(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedKitchen(t, db)

	view, err := GetInventory(db, 0)
	require.NoError(t, err)
	assert.Nil(t, view.SelectedHouseholdID)
	assert.Empty(t, view.Households)
	assert.NotNil(t, view.Inventory)
	assert.Empty(t, view.Inventory)
	assert.Len(t, view.Ingredients, 4)
}
