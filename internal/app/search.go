package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portquery/internal/core"
	"portquery/internal/types"
)

// Search runs a ports tree query: the filter selects ports, the field
// list shapes the records (catalog defaults when empty).
func (s Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	filter, err := normalizeFilter(req.Filter)
	if err != nil {
		return SearchResult{}, err
	}
	catalog := core.CatalogFor(ctx, types.RecordKindPort)
	requested := requestedFields(catalog, req.Fields)
	resolver := core.NewFieldResolver(catalog, s.Policy)
	queryFields := resolver.QueryFields(ctx, requested, filter.Key.Field())

	raw, err := s.PortsTree.Search(ctx, filter, queryFields)
	if err != nil {
		return SearchResult{}, err
	}
	records := core.ParseSearchOutput(ctx, raw, core.ParseOptions{
		IncludeMoved: req.IncludeMoved || s.IncludeMoved,
	})
	amender := core.NewAmender(catalog, s.OptionsSource, s.Policy)
	records = amender.AmendAll(ctx, records, requested)

	if err := s.writeRecords(req.OutputPath, types.RecordKindPort, records); err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Records: records}, nil
}

func normalizeFilter(filter types.SearchFilter) (types.SearchFilter, error) {
	filter.Value = strings.TrimSpace(filter.Value)
	if filter.Value == "" {
		return types.SearchFilter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search filter value is required")
	}
	if filter.Key == "" {
		filter.Key = types.SearchKeyName
	}
	return filter, nil
}

// requestedFields normalizes the caller's field list: empty means the
// catalog defaults, and the all sentinel stands alone.
func requestedFields(catalog core.FieldCatalog, fields []types.Field) types.FieldSet {
	requested := types.NewFieldSet(fields...)
	if requested.Has(types.FieldAll) {
		return types.NewFieldSet(types.FieldAll)
	}
	if len(requested) == 0 {
		return types.NewFieldSet(catalog.DefaultFields()...)
	}
	return requested
}

func (s Service) writeRecords(path string, kind types.RecordKind, records []types.Record) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	return s.Output.WriteRecords(trimmed, types.RecordFile{
		Kind:        kind,
		GeneratedAt: s.Clock().UTC(),
		Records:     records,
	})
}
