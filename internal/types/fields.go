package types

import "sort"

type Field string

// Fields the backends report directly.
const (
	FieldName  Field = "name"
	FieldPath  Field = "path"
	FieldInfo  Field = "info"
	FieldMaint Field = "maint"
	FieldCat   Field = "cat"
	FieldBdeps Field = "bdeps"
	FieldRdeps Field = "rdeps"
	FieldEdeps Field = "edeps"
	FieldPdeps Field = "pdeps"
	FieldFdeps Field = "fdeps"
	FieldWWW   Field = "www"

	FieldVersion    Field = "version"
	FieldOrigin     Field = "origin"
	FieldComment    Field = "comment"
	FieldPrefix     Field = "prefix"
	FieldMaintainer Field = "maintainer"
	FieldArch       Field = "arch"
)

// Fields computed from backend fields during amendment.
const (
	FieldPkgname      Field = "pkgname"
	FieldPortname     Field = "portname"
	FieldPortversion  Field = "portversion"
	FieldPortorigin   Field = "portorigin"
	FieldOptions      Field = "options"
	FieldOptionsFile  Field = "options_file"
	FieldOptionsFiles Field = "options_files"
)

// Fields carried by moved-entry paragraphs.  They are parser output
// only and can never be requested from a backend.
const (
	FieldMoved  Field = "moved"
	FieldDate   Field = "date"
	FieldReason Field = "reason"
)

// FieldAll requests every field a record kind can produce and skips
// the final filter step.
const FieldAll Field = "all"

type FieldSet map[Field]struct{}

func NewFieldSet(fields ...Field) FieldSet {
	set := FieldSet{}
	for _, field := range fields {
		set.Add(field)
	}
	return set
}

func (s FieldSet) Add(field Field) {
	s[field] = struct{}{}
}

func (s FieldSet) Has(field Field) bool {
	_, ok := s[field]
	return ok
}

func (s FieldSet) Sorted() []Field {
	out := make([]Field, 0, len(s))
	for field := range s {
		out = append(out, field)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}
