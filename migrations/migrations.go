// Package migrations embeds the versioned SQL schema so binaries carry it
package migrations

import "embed"

// FS holds the NNNNNN_name.{up,down}.sql files
//
//go:embed *.sql
var FS embed.FS
