// Package domainintel holds assets embedded into the binaries.
package domainintel

import "embed"

// Migrations contains the goose SQL migrations of the record store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
