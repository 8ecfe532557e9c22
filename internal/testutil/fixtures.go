package testutil

import (
	"testing"

	"github.com/localnerve/pantrydb/internal/models"
	"gorm.io/gorm"
)

// Requirement is one ingredient line of a fixture recipe
type Requirement struct {
	Ingredient models.Ingredient
	Quantity   float64
}

// CreateHousehold creates a household row
func CreateHousehold(t *testing.T, db *gorm.DB, name string) models.Household {
	t.Helper()
	household := models.Household{HouseholdName: name}
	if err := db.Create(&household).Error; err != nil {
		t.Fatalf("Failed to create household %s: %v", name, err)
	}
	return household
}

// CreateIngredient creates an ingredient with its canonical unit
func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{IngredientName: name, Unit: unit}
	if err := db.Create(&ingredient).Error; err != nil {
		t.Fatalf("Failed to create ingredient %s: %v", name, err)
	}
	return ingredient
}

// CreateRecipe creates a recipe and its ingredient requirements, each in the ingredient's unit
func CreateRecipe(t *testing.T, db *gorm.DB, name string, portionSize int, requirements ...Requirement) models.Recipe {
	t.Helper()
	recipe := models.Recipe{RecipeName: name, PortionSize: portionSize, Source: "test kitchen"}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("Failed to create recipe %s: %v", name, err)
	}

	for _, req := range requirements {
		line := models.RecipeIngredient{
			RecipeID:     recipe.RecipeID,
			IngredientID: req.Ingredient.IngredientID,
			Quantity:     req.Quantity,
			Unit:         req.Ingredient.Unit,
		}
		if err := db.Create(&line).Error; err != nil {
			t.Fatalf("Failed to add %s to recipe %s: %v", req.Ingredient.IngredientName, name, err)
		}
	}

	return recipe
}

// Stock puts an inventory row directly, bypassing the upsert service
func Stock(t *testing.T, db *gorm.DB, household models.Household, ingredient models.Ingredient, quantity float64) {
	t.Helper()
	entry := models.InventoryEntry{
		HouseholdID:  household.HouseholdID,
		IngredientID: ingredient.IngredientID,
		Quantity:     quantity,
		Unit:         ingredient.Unit,
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("Failed to stock %s: %v", ingredient.IngredientName, err)
	}
}

// Count returns the number of rows in table matching the optional condition
func Count(t *testing.T, db *gorm.DB, table string, conds ...interface{}) int64 {
	t.Helper()
	var count int64
	query := db.Table(table)
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	if err := query.Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

// Kitchen is a small seeded catalog used across tests
type Kitchen struct {
	Flour, Egg, Milk, Butter models.Ingredient
	Pancakes, Omelette       models.Recipe
}

// SeedKitchen creates four ingredients and two recipes:
// Pancakes (flour 200 g, egg 2 pc, milk 300 ml) and Omelette (egg 3 pc, butter 10 g).
func SeedKitchen(t *testing.T, db *gorm.DB) Kitchen {
	t.Helper()
	k := Kitchen{
		Flour:  CreateIngredient(t, db, "Flour", "g"),
		Egg:    CreateIngredient(t, db, "Egg", "pc"),
		Milk:   CreateIngredient(t, db, "Milk", "ml"),
		Butter: CreateIngredient(t, db, "Butter", "g"),
	}
	k.Pancakes = CreateRecipe(t, db, "Pancakes", 4,
		Requirement{k.Flour, 200}, Requirement{k.Egg, 2}, Requirement{k.Milk, 300})
	k.Omelette = CreateRecipe(t, db, "Omelette", 1,
		Requirement{k.Egg, 3}, Requirement{k.Butter, 10})
	return k
}
