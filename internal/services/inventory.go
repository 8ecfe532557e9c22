// inventory.go
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
	"math"

	"github.com/localnerve/pantrydb/internal/models"
	"github.com/localnerve/pantrydb/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// IngredientLine is an ingredient with an amount, as shown in inventories and grocery lists
type IngredientLine struct {
	IngredientID   uint64  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

// InventoryView is the payload of GET /inventory
type InventoryView struct {
	Selection
	Ingredients []models.Ingredient `json:"ingredients"`
	Inventory   []IngredientLine    `json:"inventory"`
}

// GetInventory selects a household and reads the ingredient catalog and that household's stock
func GetInventory(db *gorm.DB, householdID uint64) (*InventoryView, error) {
	sel, err := SelectHousehold(db, householdID)
	if err != nil {
		return nil, err
	}

	view := &InventoryView{Selection: sel, Inventory: []IngredientLine{}}

	if err := db.Clauses(hints.Comment("select", "pantrydb:ingredients")).
		Order("ingredient_name").
		Order("ingredient_id").
		Find(&view.Ingredients).Error; err != nil {
		return nil, err
	}

	if hid := sel.selected(); hid != 0 {
		if err := db.Clauses(hints.Comment("select", "pantrydb:inventory")).
			Table("household_in_inventory_ingredient AS hi").
			Select("i.ingredient_id, i.ingredient_name, hi.quantity, hi.unit").
			Joins("JOIN ingredient i ON i.ingredient_id = hi.ingredient_id").
			Where("hi.household_id = ?", hid).
			Order("i.ingredient_name").
			Scan(&view.Inventory).Error; err != nil {
			return nil, err
		}
	}

	return view, nil
}

// AddInventory adds quantity of an ingredient to a household's stock. The row is created on first
// use; afterwards the quantity accumulates. The unit always comes from the ingredient catalog.
func AddInventory(db *gorm.DB, householdID, ingredientID uint64, quantity float64) (int64, error) {
	if householdID == 0 {
		return 0, types.Validation("hid is required")
	}
	if ingredientID == 0 {
		return 0, types.Validation("iid is required")
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0, types.Validation("quantity must be a finite number")
	}

	var affectedRows int64

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := requireHousehold(tx, householdID); err != nil {
			return err
		}

		ingredient, err := requireIngredient(tx, ingredientID)
		if err != nil {
			return err
		}

		entry := models.InventoryEntry{
			HouseholdID:  householdID,
			IngredientID: ingredientID,
			Quantity:     quantity,
			Unit:         ingredient.Unit,
		}
		result := tx.Clauses(mergeQuantity(tx, entry.TableName(), true, "household_id", "ingredient_id")).
			Create(&entry)
		if result.Error != nil {
			return result.Error
		}

		affectedRows = upsertedRows(tx, result.RowsAffected, 1)
		return nil
	})

	return affectedRows, err
}

func requireIngredient(tx *gorm.DB, ingredientID uint64) (models.Ingredient, error) {
	var ingredient models.Ingredient
	err := tx.Where("ingredient_id = ?", ingredientID).First(&ingredient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ingredient, types.NotFound("ingredient %d not found", ingredientID)
	}
	return ingredient, err
}
