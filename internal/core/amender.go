package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"portquery/internal/policies"
	"portquery/internal/ports"
	"portquery/internal/shared"
	"portquery/internal/types"
)

// Amender fills derived record fields from the fields a backend
// reported, then filters records down to the requested shape.
// Derivation is best effort: a group whose prerequisites are missing
// is skipped, never failed.
type Amender struct {
	Catalog FieldCatalog
	Options ports.OptionsPort
	Policy  policies.FieldPolicy
}

func NewAmender(catalog FieldCatalog, options ports.OptionsPort, policy policies.FieldPolicy) Amender {
	return Amender{Catalog: catalog, Options: options, Policy: policy}
}

// AmendAll amends and filters a batch of records in order.
func (a Amender) AmendAll(ctx context.Context, records []types.Record, requested types.FieldSet) []types.Record {
	out := make([]types.Record, 0, len(records))
	for _, record := range records {
		out = append(out, a.Amend(ctx, record, requested))
	}
	log.Ctx(ctx).Debug().Int("records", len(out)).Msg("records amended")
	return out
}

// Amend derives every requested derived field whose prerequisites are
// present, then filters the record to the requested set.  Requesting
// the all sentinel derives everything derivable and skips the filter.
func (a Amender) Amend(ctx context.Context, record types.Record, requested types.FieldSet) types.Record {
	switch a.Catalog.Kind() {
	case types.RecordKindPort:
		a.amendPort(ctx, record, requested)
	case types.RecordKindPackage:
		a.amendPackage(ctx, record, requested)
	}
	if requested.Has(types.FieldAll) {
		return record.Clone()
	}
	return record.Filter(requested)
}

func (a Amender) amendPort(ctx context.Context, record types.Record, requested types.FieldSet) {
	if a.wants(requested, types.FieldPkgname, types.FieldPortname, types.FieldPortversion) {
		if record.Has(types.FieldName) {
			pkgname := record.Get(types.FieldName)
			record.Set(types.FieldPkgname, pkgname)
			name, version := ParsePkgName(pkgname)
			record.Set(types.FieldPortname, name)
			if version != "" {
				record.Set(types.FieldPortversion, version)
			}
		} else {
			a.Policy.SkippedDerivation(ctx, a.Catalog.Kind(), types.FieldPkgname, []types.Field{types.FieldName})
		}
	}
	if a.wants(requested, types.FieldPortorigin) {
		if record.Has(types.FieldPath) {
			record.Set(types.FieldPortorigin, shared.OriginFromPath(record.Get(types.FieldPath)))
		} else {
			a.Policy.SkippedDerivation(ctx, a.Catalog.Kind(), types.FieldPortorigin, []types.Field{types.FieldPath})
		}
	}
	a.amendOptions(ctx, record, requested, types.FieldName, types.FieldPath)
}

func (a Amender) amendPackage(ctx context.Context, record types.Record, requested types.FieldSet) {
	if a.wants(requested, types.FieldPkgname) {
		if record.Has(types.FieldName) && record.Has(types.FieldVersion) {
			record.Set(types.FieldPkgname, record.Get(types.FieldName)+"-"+record.Get(types.FieldVersion))
		} else {
			a.Policy.SkippedDerivation(ctx, a.Catalog.Kind(), types.FieldPkgname, missingFields(record, types.FieldName, types.FieldVersion))
		}
	}
	if a.wants(requested, types.FieldPortname) {
		if record.Has(types.FieldName) {
			record.Set(types.FieldPortname, record.Get(types.FieldName))
		} else {
			a.Policy.SkippedDerivation(ctx, a.Catalog.Kind(), types.FieldPortname, []types.Field{types.FieldName})
		}
	}
	if a.wants(requested, types.FieldPortorigin) {
		if record.Has(types.FieldOrigin) {
			record.Set(types.FieldPortorigin, record.Get(types.FieldOrigin))
		} else {
			a.Policy.SkippedDerivation(ctx, a.Catalog.Kind(), types.FieldPortorigin, []types.Field{types.FieldOrigin})
		}
	}
	a.amendOptions(ctx, record, requested, types.FieldName, types.FieldOrigin)
}

// amendOptions locates the option files recorded for a record and, when
// the option map itself was requested, loads them.  Backend failures
// here degrade to a missing field rather than failing the record.
func (a Amender) amendOptions(ctx context.Context, record types.Record, requested types.FieldSet, prereqs ...types.Field) {
	if !a.wants(requested, types.FieldOptions, types.FieldOptionsFile, types.FieldOptionsFiles) {
		return
	}
	if missing := missingFields(record, prereqs...); len(missing) > 0 {
		a.Policy.SkippedDerivation(ctx, a.Catalog.Kind(), types.FieldOptions, missing)
		return
	}
	if a.Options == nil {
		return
	}
	name, origin := a.optionsKey(record)
	paths, err := a.Options.Discover(name, origin)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("name", name).Msg("option file discovery failed")
		return
	}
	if len(paths) == 0 {
		return
	}
	record.Set(types.FieldOptionsFile, paths[len(paths)-1])
	record.Set(types.FieldOptionsFiles, strings.Join(paths, " "))
	if a.wants(requested, types.FieldOptions) {
		options, err := a.Options.Load(paths)
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Str("name", name).Msg("option file load failed")
			return
		}
		record.Options = options
	}
}

// optionsKey returns the base package name and port origin used to
// locate option files, deriving them from the kind's backend fields.
func (a Amender) optionsKey(record types.Record) (string, string) {
	if a.Catalog.Kind() == types.RecordKindPackage {
		return record.Get(types.FieldName), record.Get(types.FieldOrigin)
	}
	name, _ := ParsePkgName(record.Get(types.FieldName))
	return name, shared.OriginFromPath(record.Get(types.FieldPath))
}

func (a Amender) wants(requested types.FieldSet, fields ...types.Field) bool {
	if requested.Has(types.FieldAll) {
		return true
	}
	for _, field := range fields {
		if requested.Has(field) {
			return true
		}
	}
	return false
}

func missingFields(record types.Record, fields ...types.Field) []types.Field {
	var missing []types.Field
	for _, field := range fields {
		if !record.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}
