// mealplans.go
//
// Household pantry, recipe and meal plan data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of pantrydb.
// pantrydb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// pantrydb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with pantrydb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"errors"
	"strings"

	"github.com/localnerve/pantrydb/internal/models"
	"github.com/localnerve/pantrydb/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// RecipeOption is a recipe choice for the add-recipe form
type RecipeOption struct {
	RecipeID   uint64 `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
}

// PlanDetail is one meal plan with its recipes and aggregated grocery list
type PlanDetail struct {
	PlanID    uint64           `json:"plan_id"`
	Label     string           `json:"label"`
	Recipes   []string         `json:"recipes"`
	Groceries []IngredientLine `json:"groceries"`
}

// MealPlanView is the payload of GET /mealplans
type MealPlanView struct {
	Selection
	Recipes []RecipeOption `json:"recipes"`
	Plans   []PlanDetail   `json:"plans"`
}

// GetMealPlans selects a household and reads its plans, each with recipe names and grocery list
func GetMealPlans(db *gorm.DB, householdID uint64) (*MealPlanView, error) {
	sel, err := SelectHousehold(db, householdID)
	if err != nil {
		return nil, err
	}

	view := &MealPlanView{Selection: sel, Plans: []PlanDetail{}}

	if err := db.Clauses(hints.Comment("select", "pantrydb:recipe-options")).
		Model(&models.Recipe{}).
		Select("recipe_id, recipe_name").
		Order("recipe_name").
		Order("recipe_id").
		Scan(&view.Recipes).Error; err != nil {
		return nil, err
	}

	hid := sel.selected()
	if hid == 0 {
		return view, nil
	}

	var plans []models.MealPlan
	if err := db.Clauses(hints.Comment("select", "pantrydb:mealplans")).
		Where("household_id = ?", hid).
		Order("label").
		Order("plan_id").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return view, nil
	}

	planIDs := make([]uint64, len(plans))
	index := make(map[uint64]int, len(plans))
	for i, plan := range plans {
		planIDs[i] = plan.PlanID
		index[plan.PlanID] = i
		view.Plans = append(view.Plans, PlanDetail{
			PlanID:    plan.PlanID,
			Label:     plan.Label,
			Recipes:   []string{},
			Groceries: []IngredientLine{},
		})
	}

	var recipeRows []struct {
		PlanID     uint64
		RecipeName string
	}
	if err := db.Clauses(hints.Comment("select", "pantrydb:mealplan-recipes")).
		Table("meal_plan_selects_recipe AS mpsr").
		Select("mpsr.plan_id, r.recipe_name").
		Joins("JOIN recipe r ON r.recipe_id = mpsr.recipe_id").
		Where("mpsr.plan_id IN ?", planIDs).
		Order("r.recipe_name").
		Scan(&recipeRows).Error; err != nil {
		return nil, err
	}
	for _, row := range recipeRows {
		detail := &view.Plans[index[row.PlanID]]
		detail.Recipes = append(detail.Recipes, row.RecipeName)
	}

	var groceryRows []struct {
		PlanID uint64
		IngredientLine
	}
	if err := db.Clauses(hints.Comment("select", "pantrydb:mealplan-groceries")).
		Table("grocery_list AS gl").
		Select("gl.plan_id, i.ingredient_id, i.ingredient_name, gci.quantity, gci.unit").
		Joins("JOIN grocery_list_contains_ingredients gci ON gci.grocery_id = gl.grocery_id").
		Joins("JOIN ingredient i ON i.ingredient_id = gci.ingredient_id").
		Where("gl.plan_id IN ?", planIDs).
		Order("i.ingredient_name").
		Scan(&groceryRows).Error; err != nil {
		return nil, err
	}
	for _, row := range groceryRows {
		detail := &view.Plans[index[row.PlanID]]
		detail.Groceries = append(detail.Groceries, row.IngredientLine)
	}

	return view, nil
}

// CreateMealPlan creates a labelled plan for a household from one initial recipe, together with
// the plan's grocery list holding that recipe's requirements
func CreateMealPlan(db *gorm.DB, householdID, recipeID uint64, label string) (models.MealPlan, error) {
	plan := models.MealPlan{HouseholdID: householdID, Label: strings.TrimSpace(label)}

	switch {
	case householdID == 0:
		return plan, types.Validation("hid is required")
	case recipeID == 0:
		return plan, types.Validation("recipe_id is required")
	case plan.Label == "":
		return plan, types.Validation("label is required")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := requireHousehold(tx, householdID); err != nil {
			return err
		}
		if _, err := requireRecipe(tx, recipeID); err != nil {
			return err
		}

		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.MealPlanRecipe{PlanID: plan.PlanID, RecipeID: recipeID}).Error; err != nil {
			return err
		}

		list := models.GroceryList{PlanID: plan.PlanID}
		if err := tx.Create(&list).Error; err != nil {
			return err
		}

		return mergeRecipeRequirements(tx, list.GroceryID, recipeID)
	})

	return plan, err
}

// AddRecipesToPlan links each recipe not yet in the plan and merges its requirements into the
// plan's grocery list. Recipes already linked are skipped. Returns the plan and how many recipes
// were newly linked.
func AddRecipesToPlan(db *gorm.DB, planID uint64, recipeIDs []uint64) (models.MealPlan, int64, error) {
	var (
		plan  models.MealPlan
		added int64
	)

	if planID == 0 {
		return plan, 0, types.Validation("plan_id is required")
	}
	if len(recipeIDs) == 0 {
		return plan, 0, types.Validation("recipe_id is required")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if plan, err = requirePlan(tx, planID); err != nil {
			return err
		}

		list := models.GroceryList{}
		if err := tx.Where(models.GroceryList{PlanID: planID}).FirstOrCreate(&list).Error; err != nil {
			return err
		}

		for _, recipeID := range recipeIDs {
			if _, err := requireRecipe(tx, recipeID); err != nil {
				return err
			}

			var linked int64
			if err := tx.Model(&models.MealPlanRecipe{}).
				Where("plan_id = ? AND recipe_id = ?", planID, recipeID).
				Count(&linked).Error; err != nil {
				return err
			}
			if linked > 0 {
				continue
			}

			if err := tx.Create(&models.MealPlanRecipe{PlanID: planID, RecipeID: recipeID}).Error; err != nil {
				return err
			}
			if err := mergeRecipeRequirements(tx, list.GroceryID, recipeID); err != nil {
				return err
			}
			added++
		}

		return nil
	})

	return plan, added, err
}

// DeleteMealPlan removes a plan with its grocery list entries, grocery list and recipe links.
// Returns the deleted plan, so callers know its household, and the total rows removed.
func DeleteMealPlan(db *gorm.DB, planID uint64) (models.MealPlan, int64, error) {
	var (
		plan         models.MealPlan
		affectedRows int64
	)

	if planID == 0 {
		return plan, 0, types.Validation("plan_id is required")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if plan, err = requirePlan(tx, planID); err != nil {
			return err
		}

		groceryIDs := tx.Model(&models.GroceryList{}).Select("grocery_id").Where("plan_id = ?", planID)

		// children first
		steps := []func() *gorm.DB{
			func() *gorm.DB { return tx.Where("grocery_id IN (?)", groceryIDs).Delete(&models.GroceryListEntry{}) },
			func() *gorm.DB { return tx.Where("plan_id = ?", planID).Delete(&models.GroceryList{}) },
			func() *gorm.DB { return tx.Where("plan_id = ?", planID).Delete(&models.MealPlanRecipe{}) },
			func() *gorm.DB { return tx.Where("plan_id = ?", planID).Delete(&models.MealPlan{}) },
		}
		for _, step := range steps {
			result := step()
			if result.Error != nil {
				return result.Error
			}
			affectedRows += result.RowsAffected
		}

		return nil
	})

	return plan, affectedRows, err
}

// mergeRecipeRequirements adds a recipe's ingredient requirements to a grocery list, summing
// quantities for ingredients already on it
func mergeRecipeRequirements(tx *gorm.DB, groceryID, recipeID uint64) error {
	var requirements []models.RecipeIngredient
	if err := tx.Where("recipe_id = ?", recipeID).Find(&requirements).Error; err != nil {
		return err
	}
	if len(requirements) == 0 {
		return nil
	}

	entries := make([]models.GroceryListEntry, len(requirements))
	for i, req := range requirements {
		entries[i] = models.GroceryListEntry{
			GroceryID:    groceryID,
			IngredientID: req.IngredientID,
			Quantity:     req.Quantity,
			Unit:         req.Unit,
		}
	}

	return tx.Clauses(mergeQuantity(tx, models.GroceryListEntry{}.TableName(), false, "grocery_id", "ingredient_id")).
		Create(&entries).Error
}

func requirePlan(tx *gorm.DB, planID uint64) (models.MealPlan, error) {
	var plan models.MealPlan
	err := tx.Where("plan_id = ?", planID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return plan, types.NotFound("meal plan %d not found", planID)
	}
	return plan, err
}
