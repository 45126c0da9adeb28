package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"portquery/internal/types"
)

// FieldCatalog describes one record kind: the fields its backend can
// report directly, the default result shape, and the prerequisites of
// every derived field.  The resolver and amender depend only on this
// interface; each record kind supplies one implementation.
type FieldCatalog interface {
	Kind() types.RecordKind
	StdFields() []types.Field
	DefaultFields() []types.Field
	DependenciesForAmend() map[types.Field][]types.Field
}

// PortCatalog declares the fields of ports tree search results.
type PortCatalog struct{}

func (PortCatalog) Kind() types.RecordKind { return types.RecordKindPort }

func (PortCatalog) StdFields() []types.Field {
	return []types.Field{
		types.FieldName,
		types.FieldPath,
		types.FieldInfo,
		types.FieldMaint,
		types.FieldCat,
		types.FieldBdeps,
		types.FieldRdeps,
		types.FieldEdeps,
		types.FieldPdeps,
		types.FieldFdeps,
		types.FieldWWW,
	}
}

func (PortCatalog) DefaultFields() []types.Field {
	return []types.Field{
		types.FieldName,
		types.FieldPath,
		types.FieldInfo,
		types.FieldMaint,
		types.FieldBdeps,
		types.FieldRdeps,
		types.FieldWWW,
	}
}

func (PortCatalog) DependenciesForAmend() map[types.Field][]types.Field {
	return map[types.Field][]types.Field{
		types.FieldPkgname:      {types.FieldName},
		types.FieldPortname:     {types.FieldName},
		types.FieldPortversion:  {types.FieldName},
		types.FieldPortorigin:   {types.FieldPath},
		types.FieldOptions:      {types.FieldName, types.FieldPath},
		types.FieldOptionsFile:  {types.FieldName, types.FieldPath},
		types.FieldOptionsFiles: {types.FieldName, types.FieldPath},
	}
}

// PackageCatalog declares the fields of installed-package records.
type PackageCatalog struct{}

func (PackageCatalog) Kind() types.RecordKind { return types.RecordKindPackage }

func (PackageCatalog) StdFields() []types.Field {
	return []types.Field{
		types.FieldName,
		types.FieldVersion,
		types.FieldOrigin,
		types.FieldComment,
		types.FieldPrefix,
		types.FieldMaintainer,
		types.FieldWWW,
		types.FieldArch,
	}
}

func (PackageCatalog) DefaultFields() []types.Field {
	return []types.Field{
		types.FieldName,
		types.FieldVersion,
		types.FieldComment,
	}
}

func (PackageCatalog) DependenciesForAmend() map[types.Field][]types.Field {
	return map[types.Field][]types.Field{
		types.FieldPkgname:      {types.FieldName, types.FieldVersion},
		types.FieldPortname:     {types.FieldName},
		types.FieldPortorigin:   {types.FieldOrigin},
		types.FieldOptions:      {types.FieldName, types.FieldOrigin},
		types.FieldOptionsFile:  {types.FieldName, types.FieldOrigin},
		types.FieldOptionsFiles: {types.FieldName, types.FieldOrigin},
	}
}

var kindCatalogs = map[types.RecordKind]FieldCatalog{
	types.RecordKindPort:    PortCatalog{},
	types.RecordKindPackage: PackageCatalog{},
}

// CatalogFor returns the field catalog for a record kind.  A kind
// without a catalog, or a catalog declaring no backend fields, is a
// programming error.
func CatalogFor(ctx context.Context, kind types.RecordKind) FieldCatalog {
	catalog := kindCatalogs[kind]
	var declared []types.Field
	if catalog != nil {
		declared = catalog.StdFields()
	}
	assert.NotEmpty(ctx, joinFieldNames(declared), fmt.Sprintf("no field catalog declared for record kind %q", kind))
	return catalog
}

func joinFieldNames(fields []types.Field) string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, string(field))
	}
	return strings.Join(names, ",")
}
