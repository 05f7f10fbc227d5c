// Package migrations holds the goose SQL schema embedded into the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
