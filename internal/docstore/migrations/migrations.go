// Package migrations embeds the document store's goose migration files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
