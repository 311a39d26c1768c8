package migrations

import "embed"

// FS holds the goose migrations, applied by cmd/migrate and the store integration suite.
//
//go:embed *.sql
var FS embed.FS
