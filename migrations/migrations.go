// Package migrations embeds the schema for every supported driver so the
// binary can initialize its own store.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
