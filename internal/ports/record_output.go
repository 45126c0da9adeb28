package ports

import "portquery/internal/types"

// RecordOutputPort persists query results for downstream stages and
// reads them back.
type RecordOutputPort interface {
	WriteRecords(path string, file types.RecordFile) error
	ReadRecords(path string) (types.RecordFile, error)
}
