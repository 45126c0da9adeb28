package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"portquery/internal/ports"
	"portquery/internal/shared"
	"portquery/internal/types"
)

// pkgFormatCodes maps record fields onto pkg query format codes.
var pkgFormatCodes = map[types.Field]string{
	types.FieldName:       "%n",
	types.FieldVersion:    "%v",
	types.FieldOrigin:     "%o",
	types.FieldComment:    "%c",
	types.FieldPrefix:     "%p",
	types.FieldMaintainer: "%m",
	types.FieldWWW:        "%w",
	types.FieldArch:       "%q",
}

// PkgQueryAdapter reads installed packages by shelling out to pkg
// query with a tab-separated format string.
type PkgQueryAdapter struct {
	PkgBin string
}

func NewPkgQueryAdapter() PkgQueryAdapter {
	return PkgQueryAdapter{PkgBin: "pkg"}
}

func (a PkgQueryAdapter) Query(ctx context.Context, pattern string, fields []types.Field) ([]types.Record, error) {
	format, selected, err := buildPkgFormat(fields)
	if err != nil {
		return nil, err
	}
	args := []string{"query"}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		args = append(args, "-a", format)
	} else {
		args = append(args, "-g", format, pattern)
	}
	bin := a.PkgBin
	if bin == "" {
		bin = "pkg"
	}
	output, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pkg query failed").
			WithCause(shared.CommandError(output, err))
	}
	records := parsePkgRows(string(output), selected)
	log.Debug().Int("records", len(records)).Msg("pkg query completed")
	return records, nil
}

// buildPkgFormat renders the format string for the fields that have a
// format code, preserving field order.  Fields without a code are left
// to amendment.
func buildPkgFormat(fields []types.Field) (string, []types.Field, error) {
	var codes []string
	var selected []types.Field
	for _, field := range fields {
		code, ok := pkgFormatCodes[field]
		if !ok {
			continue
		}
		codes = append(codes, code)
		selected = append(selected, field)
	}
	if len(codes) == 0 {
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no queryable fields for pkg query")
	}
	return strings.Join(codes, "\t"), selected, nil
}

// parsePkgRows splits pkg query output into one record per line.  Rows
// with an unexpected column count are dropped.
func parsePkgRows(raw string, fields []types.Field) []types.Record {
	var records []types.Record
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, "\t")
		if len(values) != len(fields) {
			continue
		}
		record := types.NewRecord()
		for idx, field := range fields {
			record.Set(field, strings.TrimSpace(values[idx]))
		}
		records = append(records, record)
	}
	return records
}

var _ ports.InstalledPort = PkgQueryAdapter{}
