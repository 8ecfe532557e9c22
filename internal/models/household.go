package models

// Household owns an inventory and zero or more meal plans
type Household struct {
	HouseholdID   uint64 `gorm:"column:household_id;primaryKey;autoIncrement" json:"household_id"`
	HouseholdName string `gorm:"column:household_name;size:255;not null" json:"household_name"`
}

// Ingredient is shared reference data with a canonical unit
type Ingredient struct {
	IngredientID   uint64 `gorm:"column:ingredient_id;primaryKey;autoIncrement" json:"ingredient_id"`
	IngredientName string `gorm:"column:ingredient_name;size:255;not null" json:"ingredient_name"`
	Unit           string `gorm:"column:unit;size:32" json:"unit"`
}

// InventoryEntry is how much of an ingredient a household currently has.
// Unique per (household, ingredient); repeated additions merge into the same row.
type InventoryEntry struct {
	HouseholdID  uint64  `gorm:"column:household_id;primaryKey;autoIncrement:false" json:"household_id"`
	IngredientID uint64  `gorm:"column:ingredient_id;primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     float64 `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Unit         string  `gorm:"column:unit;size:32" json:"unit"`

	// belongs-to by naming: Household+HouseholdID, Ingredient+IngredientID
	Household  Household  `json:"-"`
	Ingredient Ingredient `json:"-"`
}

// TableName overrides the table name for Household
func (Household) TableName() string {
	return "household"
}

// TableName overrides the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredient"
}

// TableName overrides the table name for InventoryEntry
func (InventoryEntry) TableName() string {
	return "household_in_inventory_ingredient"
}
