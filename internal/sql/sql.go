// Package sql holds the database migrations and sqlc query sources.
package sql

import "embed"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the embedded migration files.
// Files live under the "migrations" directory of the returned filesystem.
func Migrations() embed.FS {
	return migrations
}
