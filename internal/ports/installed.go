package ports

import (
	"context"

	"portquery/internal/types"
)

// InstalledPort queries the installed-package database.  The pattern
// is a shell glob on package names; empty matches everything.  Result
// records carry only the requested fields.
type InstalledPort interface {
	Query(ctx context.Context, pattern string, fields []types.Field) ([]types.Record, error)
}
