// Package migrations embeds the per-service SQL migrations so the
// binaries stay self-contained.
package migrations

import "embed"

//go:embed auth/*.sql users/*.sql appointments/*.sql
var FS embed.FS
