package services

import (
	"github.com/localnerve/pantrydb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// Selection is the household selector shared by the inventory, cookable and meal plan views
type Selection struct {
	Households          []models.Household `json:"households"`
	SelectedHouseholdID *uint64            `json:"selected_household_id"`
}

// selected reports the chosen household id, zero when there is none
func (s Selection) selected() uint64 {
	if s.SelectedHouseholdID == nil {
		return 0
	}
	return *s.SelectedHouseholdID
}

// SelectHousehold lists households by name and picks the requested one, or the first when
// requested is zero. With no households and no request the selection is empty.
func SelectHousehold(db *gorm.DB, requested uint64) (Selection, error) {
	households, err := ListHouseholds(db)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{Households: households}
	switch {
	case requested != 0:
		sel.SelectedHouseholdID = &requested
	case len(households) > 0:
		first := households[0].HouseholdID
		sel.SelectedHouseholdID = &first
	}

	return sel, nil
}

// ListHouseholds returns all households ordered by name
func ListHouseholds(db *gorm.DB) ([]models.Household, error) {
	var households []models.Household
	if err := db.Clauses(hints.Comment("select", "pantrydb:households")).
		Order("household_name").
		Order("household_id").
		Find(&households).Error; err != nil {
		return nil, err
	}
	return households, nil
}
