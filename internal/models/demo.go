package models

// DemoName is a row of the legacy "test" table behind / and /add
type DemoName struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

// TableName overrides the table name for DemoName
func (DemoName) TableName() string {
	return "test"
}

// All returns every model in dependency order, for migrations
func All() []interface{} {
	return []interface{}{
		&Household{},
		&Ingredient{},
		&Recipe{},
		&RecipeIngredient{},
		&InventoryEntry{},
		&MealPlan{},
		&MealPlanRecipe{},
		&GroceryList{},
		&GroceryListEntry{},
		&DemoName{},
	}
}
