package types

import "time"

// Record is one search or query result: a flat field-to-value mapping
// plus the build option map, the only non-scalar field.  Records are
// built fresh per backend paragraph or row, mutated once during
// amendment and filtering, and read-only afterwards.
type Record struct {
	Fields  map[Field]string `yaml:"fields"`
	Options map[string]bool  `yaml:"options,omitempty"`
}

func NewRecord() Record {
	return Record{Fields: map[Field]string{}}
}

func (r Record) Get(field Field) string {
	return r.Fields[field]
}

func (r Record) Has(field Field) bool {
	_, ok := r.Fields[field]
	return ok
}

func (r Record) Set(field Field, value string) {
	r.Fields[field] = value
}

func (r Record) Clone() Record {
	clone := Record{Fields: make(map[Field]string, len(r.Fields))}
	for field, value := range r.Fields {
		clone.Fields[field] = value
	}
	if r.Options != nil {
		clone.Options = make(map[string]bool, len(r.Options))
		for name, enabled := range r.Options {
			clone.Options[name] = enabled
		}
	}
	return clone
}

// Filter returns the record reduced to the fields in keep.  The option
// map survives only when the options field itself is kept.  Filtering
// an already filtered record with the same set changes nothing.
func (r Record) Filter(keep FieldSet) Record {
	filtered := Record{Fields: map[Field]string{}}
	for field, value := range r.Fields {
		if keep.Has(field) {
			filtered.Fields[field] = value
		}
	}
	if keep.Has(FieldOptions) {
		filtered.Options = r.Options
	}
	return filtered
}

// RecordFile is the serialized form of a result set.
type RecordFile struct {
	Kind        RecordKind `yaml:"kind,omitempty"`
	GeneratedAt time.Time  `yaml:"generated_at,omitempty"`
	Records     []Record   `yaml:"records"`
}
