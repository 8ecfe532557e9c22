package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mergeQuantity builds the ON CONFLICT clause that adds the incoming quantity to the stored one
// for the (owner, ingredient) key instead of inserting a duplicate row.
func mergeQuantity(tx *gorm.DB, table string, refreshUnit bool, keys ...string) clause.OnConflict {
	columns := make([]clause.Column, len(keys))
	for i, key := range keys {
		columns[i] = clause.Column{Name: key}
	}

	updates := clause.Set{{Column: clause.Column{Name: "quantity"}, Value: addedQuantity(tx, table)}}
	if refreshUnit {
		updates = append(updates, clause.AssignmentColumns([]string{"unit"})...)
	}

	return clause.OnConflict{Columns: columns, DoUpdates: updates}
}

// addedQuantity is "stored + incoming" in the dialect's upsert syntax
func addedQuantity(tx *gorm.DB, table string) clause.Expr {
	if tx.Dialector.Name() == "mysql" {
		return gorm.Expr("quantity + VALUES(quantity)")
	}
	// postgres, sqlite (excluded pseudo-table) and sqlserver (MERGE ... AS excluded)
	return gorm.Expr(fmt.Sprintf("%s.quantity + excluded.quantity", table))
}

// upsertedRows reports one row per upserted entry on every dialect.
// MySQL counts an ON DUPLICATE KEY update as two rows and an unchanged row as none.
func upsertedRows(tx *gorm.DB, rowsAffected int64, entries int) int64 {
	if tx.Dialector.Name() == "mysql" {
		return int64(entries)
	}
	return rowsAffected
}
