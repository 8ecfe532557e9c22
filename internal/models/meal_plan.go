package models

// MealPlan belongs to one household and selects one or more recipes
type MealPlan struct {
	PlanID      uint64 `gorm:"column:plan_id;primaryKey;autoIncrement" json:"plan_id"`
	HouseholdID uint64 `gorm:"column:household_id;not null;index" json:"household_id"`
	Label       string `gorm:"column:label;size:255;not null" json:"label"`

	Household Household `json:"-"`
}

// MealPlanRecipe links a plan to a recipe
type MealPlanRecipe struct {
	PlanID   uint64 `gorm:"column:plan_id;primaryKey;autoIncrement:false" json:"plan_id"`
	RecipeID uint64 `gorm:"column:recipe_id;primaryKey;autoIncrement:false" json:"recipe_id"`

	// Plan, not MealPlan: the association name plus the parent key must spell PlanID
	Plan   MealPlan `json:"-"`
	Recipe Recipe   `json:"-"`
}

// GroceryList is the 1:1 shopping list of a meal plan
type GroceryList struct {
	GroceryID uint64 `gorm:"column:grocery_id;primaryKey;autoIncrement" json:"grocery_id"`
	PlanID    uint64 `gorm:"column:plan_id;not null;uniqueIndex" json:"plan_id"`

	Plan MealPlan `json:"-"`
}

// GroceryListEntry is the aggregated requirement for one ingredient across a plan's recipes
type GroceryListEntry struct {
	GroceryID    uint64  `gorm:"column:grocery_id;primaryKey;autoIncrement:false" json:"grocery_id"`
	IngredientID uint64  `gorm:"column:ingredient_id;primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     float64 `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Unit         string  `gorm:"column:unit;size:32" json:"unit"`

	Grocery    GroceryList `json:"-"`
	Ingredient Ingredient  `json:"-"`
}

// TableName overrides the table name for MealPlan
func (MealPlan) TableName() string {
	return "meal_plans"
}

// TableName overrides the table name for MealPlanRecipe
func (MealPlanRecipe) TableName() string {
	return "meal_plan_selects_recipe"
}

// TableName overrides the table name for GroceryList
func (GroceryList) TableName() string {
	return "grocery_list"
}

// TableName overrides the table name for GroceryListEntry
func (GroceryListEntry) TableName() string {
	return "grocery_list_contains_ingredients"
}
