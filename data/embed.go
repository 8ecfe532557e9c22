// Package data embeds the schema and seed scripts used to initialize container databases
package data

import (
	_ "embed"
)

//go:embed initdb/postgres/001-ddl-tables.sql
var InitdbPostgresTables string

//go:embed initdb/postgres/002-seed.sql
var InitdbPostgresSeed string

//go:embed initdb/mariadb/001-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/002-seed.sql
var InitdbMariaDBSeed string

// InitScripts returns the schema and seed scripts for a database type, in execution order
func InitScripts(dbType string) []string {
	switch dbType {
	case "postgres":
		return []string{InitdbPostgresTables, InitdbPostgresSeed}
	case "mysql", "mariadb":
		return []string{InitdbMariaDBTables, InitdbMariaDBSeed}
	}
	return nil
}
