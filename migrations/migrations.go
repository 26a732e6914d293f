// Package migrations embeds the goose migrations of each SQL dialect.
package migrations

import "embed"

//go:embed mysql/*.sql sqlite/*.sql
var Migrations embed.FS
