package app

import (
	"context"
	"strings"

	"portquery/internal/core"
	"portquery/internal/types"
)

// Installed queries the installed-package backend.  The pattern is a
// shell glob over package names; empty matches everything.
func (s Service) Installed(ctx context.Context, req InstalledRequest) (InstalledResult, error) {
	catalog := core.CatalogFor(ctx, types.RecordKindPackage)
	requested := requestedFields(catalog, req.Fields)
	resolver := core.NewFieldResolver(catalog, s.Policy)
	queryFields := resolver.QueryFields(ctx, requested, "")
	if len(queryFields) == 0 {
		return InstalledResult{}, nil
	}

	records, err := s.InstalledSource.Query(ctx, strings.TrimSpace(req.Pattern), queryFields)
	if err != nil {
		return InstalledResult{}, err
	}
	amender := core.NewAmender(catalog, s.OptionsSource, s.Policy)
	records = amender.AmendAll(ctx, records, requested)

	if err := s.writeRecords(req.OutputPath, types.RecordKindPackage, records); err != nil {
		return InstalledResult{}, err
	}
	return InstalledResult{Records: records}, nil
}
