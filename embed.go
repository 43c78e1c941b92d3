// Package commissions exposes assets that must be embedded from the module root.
package commissions

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
