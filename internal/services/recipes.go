package services

import (
	"errors"

	"github.com/localnerve/pantrydb/internal/models"
	"github.com/localnerve/pantrydb/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// CookableRecipe is a recipe the selected household holds every ingredient for
type CookableRecipe struct {
	RecipeID    uint64 `json:"recipe_id"`
	RecipeName  string `json:"recipe_name"`
	PortionSize int    `json:"portion_size"`
}

// CookableView is the payload of GET /cookable
type CookableView struct {
	Selection
	Recipes []CookableRecipe `json:"recipes"`
}

// A recipe is cookable when none of its ingredients is missing from the household's inventory.
// Only presence counts, not quantity.
const cookableQuery = `SELECT DISTINCT r.recipe_id, r.recipe_name, r.portion_size
FROM recipe r
WHERE NOT EXISTS (
	SELECT 1 FROM recipe_made_with_ingredient ri
	WHERE ri.recipe_id = r.recipe_id
	AND ri.ingredient_id NOT IN (
		SELECT hi.ingredient_id FROM household_in_inventory_ingredient hi
		WHERE hi.household_id = ?
	)
)
ORDER BY r.recipe_name`

// ListRecipes returns every recipe ordered by name
func ListRecipes(db *gorm.DB) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := db.Clauses(hints.Comment("select", "pantrydb:recipes")).
		Order("recipe_name").
		Order("recipe_id").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListCookableRecipes selects a household and finds the recipes it can cook from its inventory
func ListCookableRecipes(db *gorm.DB, householdID uint64) (*CookableView, error) {
	sel, err := SelectHousehold(db, householdID)
	if err != nil {
		return nil, err
	}

	view := &CookableView{Selection: sel, Recipes: []CookableRecipe{}}
	if hid := sel.selected(); hid != 0 {
		if err := db.Raw(cookableQuery, hid).Scan(&view.Recipes).Error; err != nil {
			return nil, err
		}
	}

	return view, nil
}

func requireRecipe(tx *gorm.DB, recipeID uint64) (models.Recipe, error) {
	var recipe models.Recipe
	err := tx.Where("recipe_id = ?", recipeID).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return recipe, types.NotFound("recipe %d not found", recipeID)
	}
	return recipe, err
}
