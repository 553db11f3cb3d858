package contact

import (
	"embed"
	"io/fs"
)

var (
	//go:embed migrations/*.sql
	migrationFiles embed.FS

	//go:embed locales/*.yaml
	localeFiles embed.FS
)

// Migrations holds the goose migrations of the contact schema at its root.
var Migrations, _ = fs.Sub(migrationFiles, "migrations")

// Locales holds the translation files of the contact pages, one per language.
var Locales, _ = fs.Sub(localeFiles, "locales")
