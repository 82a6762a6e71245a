// Package migrations embeds the goose migrations of the client's local SQLite cache.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
