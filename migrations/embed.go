// Package migrations holds the versioned schema for every supported store backend.
package migrations

import "embed"

// FS contains one directory of golang-migrate files per backend ("sqlite", "postgres").
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
