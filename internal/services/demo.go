package services

import (
	"strings"

	"github.com/localnerve/pantrydb/internal/models"
	"github.com/localnerve/pantrydb/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ListDemoNames returns the names in the demo table
func ListDemoNames(db *gorm.DB) ([]string, error) {
	names := []string{}
	if err := db.Clauses(hints.Comment("select", "pantrydb:demo")).
		Model(&models.DemoName{}).
		Order("id").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// AddDemoName inserts one name into the demo table
func AddDemoName(db *gorm.DB, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, types.Validation("name is required")
	}

	var affectedRows int64
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Create(&models.DemoName{Name: name})
		affectedRows = result.RowsAffected
		return result.Error
	})

	return affectedRows, err
}
