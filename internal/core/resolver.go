package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"portquery/internal/policies"
	"portquery/internal/types"
)

// FieldResolver expands a requested field set into the set of fields
// the backend must be asked for.
type FieldResolver struct {
	Catalog FieldCatalog
	Policy  policies.FieldPolicy
}

func NewFieldResolver(catalog FieldCatalog, policy policies.FieldPolicy) FieldResolver {
	return FieldResolver{Catalog: catalog, Policy: policy}
}

// QueryFields returns the sorted backend query set for the requested
// fields: the requested backend fields, the prerequisites of every
// requested derived field, and the search key's anchor field.
// Requested fields the catalog knows nothing about are dropped from
// the query; the backend can never produce them.
func (r FieldResolver) QueryFields(ctx context.Context, requested types.FieldSet, searchKey types.Field) []types.Field {
	std := types.NewFieldSet(r.Catalog.StdFields()...)
	deps := r.Catalog.DependenciesForAmend()
	query := types.FieldSet{}
	var dropped []types.Field
	if requested.Has(types.FieldAll) {
		for field := range std {
			query.Add(field)
		}
	}
	for field := range requested {
		if field == types.FieldAll {
			continue
		}
		if std.Has(field) {
			query.Add(field)
			continue
		}
		prereqs, ok := deps[field]
		if !ok {
			dropped = append(dropped, field)
			continue
		}
		for _, prereq := range prereqs {
			query.Add(prereq)
		}
	}
	if searchKey != "" {
		query.Add(searchKey)
	}
	r.Policy.DroppedFields(ctx, r.Catalog.Kind(), dropped)
	fields := query.Sorted()
	log.Ctx(ctx).Debug().
		Int("requested", len(requested)).
		Int("query", len(fields)).
		Msg("field set resolved")
	return fields
}
