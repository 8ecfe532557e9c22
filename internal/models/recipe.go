package models

// Recipe is read-only reference data
type Recipe struct {
	RecipeID    uint64 `gorm:"column:recipe_id;primaryKey;autoIncrement" json:"recipe_id"`
	RecipeName  string `gorm:"column:recipe_name;size:255;not null" json:"recipe_name"`
	PortionSize int    `gorm:"column:portion_size" json:"portion_size"`
	Source      string `gorm:"column:source;size:255" json:"source"`
}

// RecipeIngredient is one ingredient requirement of a recipe
type RecipeIngredient struct {
	RecipeID     uint64  `gorm:"column:recipe_id;primaryKey;autoIncrement:false" json:"recipe_id"`
	IngredientID uint64  `gorm:"column:ingredient_id;primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     float64 `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Unit         string  `gorm:"column:unit;size:32" json:"unit"`

	Recipe     Recipe     `json:"-"`
	Ingredient Ingredient `json:"-"`
}

// TableName overrides the table name for Recipe
func (Recipe) TableName() string {
	return "recipe"
}

// TableName overrides the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_made_with_ingredient"
}
