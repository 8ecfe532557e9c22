package services

import (
	"errors"
	"strings"

	"github.com/localnerve/pantrydb/internal/models"
	"github.com/localnerve/pantrydb/internal/types"
	"gorm.io/gorm"
)

// CreateHousehold inserts a household with the given non-empty name
func CreateHousehold(db *gorm.DB, name string) (models.Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Household{}, types.Validation("household_name is required")
	}

	household := models.Household{HouseholdName: name}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&household).Error
	})

	return household, err
}

// DeleteHousehold removes a household row. Inventory or meal plans still referencing it make the
// store reject the delete.
func DeleteHousehold(db *gorm.DB, householdID uint64) (int64, error) {
	var affectedRows int64

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("household_id = ?", householdID).Delete(&models.Household{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return types.NotFound("household %d not found", householdID)
		}
		affectedRows = result.RowsAffected
		return nil
	})

	return affectedRows, err
}

// requireHousehold loads a household or reports it missing
func requireHousehold(tx *gorm.DB, householdID uint64) (models.Household, error) {
	var household models.Household
	err := tx.Where("household_id = ?", householdID).First(&household).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return household, types.NotFound("household %d not found", householdID)
	}
	return household, err
}
