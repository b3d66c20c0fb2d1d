// Package migrations embeds the goose SQL migration files for the
// account/character/item/skill schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
