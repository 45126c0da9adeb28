package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"portquery/internal/ports"
	"portquery/internal/types"
)

// packagesColumns maps record fields onto columns of the packages
// table in pkg's local.sqlite database.
var packagesColumns = map[types.Field]string{
	types.FieldName:       "name",
	types.FieldVersion:    "version",
	types.FieldOrigin:     "origin",
	types.FieldComment:    "comment",
	types.FieldPrefix:     "prefix",
	types.FieldMaintainer: "maintainer",
	types.FieldWWW:        "www",
	types.FieldArch:       "arch",
}

// PkgSQLiteAdapter reads the installed-package database directly, for
// hosts where shelling out to pkg is not wanted.
type PkgSQLiteAdapter struct {
	DBPath string
}

func NewPkgSQLiteAdapter(dbPath string) PkgSQLiteAdapter {
	return PkgSQLiteAdapter{DBPath: dbPath}
}

func (a PkgSQLiteAdapter) Query(ctx context.Context, pattern string, fields []types.Field) ([]types.Record, error) {
	if _, err := os.Stat(a.DBPath); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package database not found").
			WithCause(err)
	}
	columns, selected, err := buildPackagesSelect(fields)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", a.DBPath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open package database").
			WithCause(err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s FROM packages", strings.Join(columns, ", "))
	var args []any
	pattern = strings.TrimSpace(pattern)
	if pattern != "" {
		query += " WHERE name GLOB ?"
		args = append(args, pattern)
	}
	query += " ORDER BY name"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("package database query failed").
			WithCause(err)
	}
	defer rows.Close()

	var records []types.Record
	values := make([]sql.NullString, len(selected))
	scan := make([]any, len(selected))
	for idx := range values {
		scan[idx] = &values[idx]
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan package row").
				WithCause(err)
		}
		record := types.NewRecord()
		for idx, field := range selected {
			if values[idx].Valid {
				record.Set(field, values[idx].String)
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("package row iteration failed").
			WithCause(err)
	}
	log.Debug().Int("records", len(records)).Msg("package database query completed")
	return records, nil
}

func buildPackagesSelect(fields []types.Field) ([]string, []types.Field, error) {
	var columns []string
	var selected []types.Field
	for _, field := range fields {
		column, ok := packagesColumns[field]
		if !ok {
			continue
		}
		columns = append(columns, column)
		selected = append(selected, field)
	}
	if len(columns) == 0 {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no queryable fields for package database")
	}
	return columns, selected, nil
}

var _ ports.InstalledPort = PkgSQLiteAdapter{}
