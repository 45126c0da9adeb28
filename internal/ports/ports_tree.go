package ports

import (
	"context"

	"portquery/internal/types"
)

// PortsTreePort runs a search against the ports tree and returns the
// backend's raw paragraph output.  Parsing stays in core so every
// backend shares one set of parsing rules.
type PortsTreePort interface {
	Search(ctx context.Context, filter types.SearchFilter, fields []types.Field) (string, error)
}
