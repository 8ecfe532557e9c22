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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/middleware"
	"github.com/localnerve/pantrydb/internal/services"
	"github.com/localnerve/pantrydb/internal/types"
)

// MealPlanHandler handles /mealplans
type MealPlanHandler struct{}

type mealPlanForm struct {
	Action   string                           `json:"action" form:"action"`
	HID      types.FlexUint64                 `json:"hid" form:"hid"`
	PlanID   types.FlexUint64                 `json:"plan_id" form:"plan_id"`
	RecipeID types.FlexList[types.FlexUint64] `json:"recipe_id" form:"recipe_id"`
	Label    string                           `json:"label" form:"label"`
}

// GetMealPlans handles GET /mealplans?hid=
// @Summary View a household's meal plans
// @Description Household selector, recipe choices and each plan of the selected household with its recipes and grocery list
// @Tags MealPlans
// @Produce json
// @Param hid query integer false "Household id, defaults to the first household by name"
// @Success 200 {object} services.MealPlanView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /mealplans [get]
func (h *MealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	hid, err := householdSelector(c)
	if err != nil {
		return err
	}

	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	view, err := services.GetMealPlans(db, hid)
	if err != nil {
		return err
	}

	return c.JSON(view)
}

// PostMealPlan handles POST /mealplans
// @Summary Create, extend or delete a meal plan
// @Description Without action, creates plan label for household hid from recipe_id. action=add_recipe links recipe_id (one or more) to plan_id. action=delete removes plan_id.
// @Tags MealPlans
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param action formData string false "add_recipe or delete"
// @Param hid formData integer false "Household id"
// @Param plan_id formData integer false "Meal plan id"
// @Param recipe_id formData []integer false "Recipe id(s)"
// @Param label formData string false "Label for a new plan"
// @Success 200 {object} utils.SuccessResponseStruct
// @Success 303
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /mealplans [post]
func (h *MealPlanHandler) PostMealPlan(c *fiber.Ctx) error {
	var form mealPlanForm
	if err := parseBody(c, &form); err != nil {
		return err
	}

	hid, err := bodyOrQueryHID(c, form.HID)
	if err != nil {
		return err
	}

	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	recipeIDs := types.IDs(form.RecipeID)

	switch form.Action {
	case "":
		var recipeID uint64
		if len(recipeIDs) > 0 {
			recipeID = recipeIDs[0]
		}
		if _, err := services.CreateMealPlan(db, hid, recipeID, form.Label); err != nil {
			return err
		}
		return respondMutation(c, withHousehold("/mealplans", hid), 1)

	case "add_recipe":
		plan, added, err := services.AddRecipesToPlan(db, form.PlanID.Uint64(), recipeIDs)
		if err != nil {
			return err
		}
		if hid == 0 {
			hid = plan.HouseholdID
		}
		return respondMutation(c, withHousehold("/mealplans", hid), added)

	case "delete":
		plan, affectedRows, err := services.DeleteMealPlan(db, form.PlanID.Uint64())
		if err != nil {
			return err
		}
		if hid == 0 {
			hid = plan.HouseholdID
		}
		return respondMutation(c, withHousehold("/mealplans", hid), affectedRows)
	}

	return types.Validation("unknown action %q", form.Action)
}
