package migrations

import "embed"

// FS holds one migration directory per database driver.
//
//go:embed sqlite postgres
var FS embed.FS
