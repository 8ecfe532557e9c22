package services

import (
	"testing"

	"github.com/localnerve/pantrydb/internal/testutil"
	"github.com/localnerve/pantrydb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListHouseholds(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := CreateHousehold(db, "Zeta")
	require.NoError(t, err)
	created, err := CreateHousehold(db, "  Alpha ")
	require.NoError(t, err)
	assert.NotZero(t, created.HouseholdID)
	assert.Equal(t, "Alpha", created.HouseholdName)

	households, err := ListHouseholds(db)
	require.NoError(t, err)
	require.Len(t, households, 2)
	assert.Equal(t, "Alpha", households[0].HouseholdName)
	assert.Equal(t, "Zeta", households[1].HouseholdName)
}

func TestCreateHouseholdRequiresName(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := CreateHousehold(db, "   ")
	ce, ok := types.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindValidation, ce.Type)
	assert.Zero(t, testutil.Count(t, db, "household"))
}

func TestDeleteHousehold(t *testing.T) {
	db := testutil.NewTestDB(t)
	household := testutil.CreateHousehold(t, db, "Smith")

	rows, err := DeleteHousehold(db, household.HouseholdID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Zero(t, testutil.Count(t, db, "household"))
}

func TestDeleteHouseholdUnknown(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := DeleteHousehold(db, 999)
	ce, ok := types.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindNotFound, ce.Type)
}

func TestDeleteHouseholdWithInventoryIsRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	k := testutil.SeedKitchen(t, db)
	household := testutil.CreateHousehold(t, db, "Smith")
	testutil.Stock(t, db, household, k.Egg, 6)

	_, err := DeleteHousehold(db, household.HouseholdID)
	require.Error(t, err)
	assert.Equal(t, int64(1), testutil.Count(t, db, "household"))
	assert.Equal(t, int64(1), testutil.Count(t, db, "household_in_inventory_ingredient"))
}

func TestSelectHousehold(t *testing.T) {
	db := testutil.NewTestDB(t)

	t.Run("empty", func(t *testing.T) {
		sel, err := SelectHousehold(db, 0)
		require.NoError(t, err)
		assert.Empty(t, sel.Households)
		assert.Nil(t, sel.SelectedHouseholdID)
	})

	b := testutil.CreateHousehold(t, db, "Beta")
	a := testutil.CreateHousehold(t, db, "Alpha")

	t.Run("defaults to first by name", func(t *testing.T) {
		sel, err := SelectHousehold(db, 0)
		require.NoError(t, err)
		require.NotNil(t, sel.SelectedHouseholdID)
		assert.Equal(t, a.HouseholdID, *sel.SelectedHouseholdID)
	})

	t.Run("explicit", func(t *testing.T) {
		sel, err := SelectHousehold(db, b.HouseholdID)
		require.NoError(t, err)
		require.NotNil(t, sel.SelectedHouseholdID)
		assert.Equal(t, b.HouseholdID, *sel.SelectedHouseholdID)
		assert.Len(t, sel.Households, 2)
	})
}
