// Package migrations embebe los archivos SQL del esquema.
package migrations

import "embed"

// FS contiene las migraciones de cada motor en su propio directorio.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
