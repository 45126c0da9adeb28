package types

type RecordKind string

const (
	RecordKindPort    RecordKind = "port"
	RecordKindPackage RecordKind = "package"
)

type SearchKey string

const (
	SearchKeyName  SearchKey = "name"
	SearchKeyKey   SearchKey = "key"
	SearchKeyPath  SearchKey = "path"
	SearchKeyInfo  SearchKey = "info"
	SearchKeyMaint SearchKey = "maint"
	SearchKeyCat   SearchKey = "cat"
	SearchKeyBdeps SearchKey = "bdeps"
	SearchKeyRdeps SearchKey = "rdeps"
	SearchKeyWWW   SearchKey = "www"
)

// Field returns the record field a search key matches against.  The
// composite "key" search matches name, comment and dependency lists at
// once; its anchor field in result records is the name.
func (k SearchKey) Field() Field {
	if k == SearchKeyKey {
		return FieldName
	}
	return Field(k)
}

// SearchFilter selects ports tree entries by one search key.  Value
// is matched as a case-sensitive substring by the backend.
type SearchFilter struct {
	Key   SearchKey
	Value string
}
