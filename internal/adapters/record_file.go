package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"portquery/internal/ports"
	"portquery/internal/types"
)

// RecordFileAdapter serializes result sets to YAML and reads them
// back.
type RecordFileAdapter struct{}

func NewRecordFileAdapter() RecordFileAdapter {
	return RecordFileAdapter{}
}

func (a RecordFileAdapter) WriteRecords(path string, file types.RecordFile) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize records").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0644)
}

func (a RecordFileAdapter) ReadRecords(path string) (types.RecordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RecordFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("record file not found").
			WithCause(err)
	}
	var file types.RecordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.RecordFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse record yaml").
			WithCause(err)
	}
	return file, nil
}

func ensureParentDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record file path is empty")
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create record directory").
			WithCause(err)
	}
	return nil
}

var _ ports.RecordOutputPort = RecordFileAdapter{}
