package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portquery/internal/adapters"
	"portquery/internal/app"
	"portquery/internal/config"
	"portquery/internal/types"
	"portquery/tests/testutil"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

// zipTreeScript stands in for the ports tree search target.  It prints
// one live port and one moved entry, the two paragraph shapes the
// search output contains.
const zipTreeScript = `#!/bin/sh
printf 'Port:\tzip-3.0_1\n'
printf 'Path:\t/usr/ports/archivers/zip\n'
printf 'Info:\tCreate/update ZIP files compatible with PKZIP\n'
printf '\n'
printf 'Port:\tzip-devel-3.1\n'
printf 'Moved:\tarchivers/zip\n'
printf 'Date:\t2024-01-15\n'
printf 'Reason:\tMerged into archivers/zip\n'
`

// TestSearchPipeline exercises the search workflow end to end:
//
//	config file -> load -> wire service -> search -> amend -> export
//
// The ports tree binary is a fake script, the saved options and the
// record export are real files in a temp dir.
func TestSearchPipeline(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()

	// Step 1: Lay out a ports tree stand-in, a fake search binary, a
	// recorded options file, and an output directory.
	portsDir := filepath.Join(dir, "ports")
	require.NoError(t, os.MkdirAll(portsDir, 0o755))
	makeBin := testutil.WriteExecutable(t, dir, "make", zipTreeScript)
	dbDir := filepath.Join(dir, "db")
	optionsPath := testutil.WriteOptionsFile(t, dbDir, "archivers_zip", "options", "OPTIONS_FILE_SET+=DOCS\n")
	recordPath := filepath.Join(dir, "out", "records.yml")

	// Step 2: Write a config file pointing at the fixtures and load it.
	configPath := filepath.Join(dir, "portquery.yaml")
	configContent := fmt.Sprintf("ports_dir: %s\nmake_bin: %s\nport_dbdir: %s\n", portsDir, makeBin, dbDir)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, portsDir, cfg.PortsDir)
	assert.Equal(t, makeBin, cfg.MakeBin)
	assert.Equal(t, dbDir, cfg.PortDBDir)
	assert.Equal(t, config.BackendPkg, cfg.InstalledBackend)

	// Step 3: Wire the service and search by name, asking for derived
	// fields alongside the backend ones.
	service := app.NewService(cfg)
	result, err := service.Search(t.Context(), app.SearchRequest{
		Filter: types.SearchFilter{Key: types.SearchKeyName, Value: "zip"},
		Fields: []types.Field{
			types.FieldName,
			types.FieldPath,
			types.FieldPortname,
			types.FieldPortversion,
			types.FieldPortorigin,
			types.FieldOptions,
			types.FieldOptionsFile,
		},
		OutputPath: recordPath,
	})
	require.NoError(t, err)

	// Step 4: The moved entry is dropped, the live port is amended with
	// the derived fields and the recorded options.
	require.Len(t, result.Records, 1)
	want := types.Record{
		Fields: map[types.Field]string{
			types.FieldName:        "zip-3.0_1",
			types.FieldPath:        "/usr/ports/archivers/zip",
			types.FieldPortname:    "zip",
			types.FieldPortversion: "3.0_1",
			types.FieldPortorigin:  "archivers/zip",
			types.FieldOptionsFile: optionsPath,
		},
		Options: map[string]bool{"DOCS": true},
	}
	if diff := cmp.Diff(want, result.Records[0]); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}

	// Step 5: The export is readable through the record file adapter
	// and carries the record kind and generation time.
	output := adapters.NewRecordFileAdapter()
	file, err := output.ReadRecords(recordPath)
	require.NoError(t, err)
	assert.Equal(t, types.RecordKindPort, file.Kind)
	assert.False(t, file.GeneratedAt.IsZero())
	assert.Equal(t, result.Records, file.Records)
}

// TestSearchPipelineMovedEntries verifies that moved entries survive
// the pipeline when the request opts in.
func TestSearchPipelineMovedEntries(t *testing.T) {
	dir := t.TempDir()
	portsDir := filepath.Join(dir, "ports")
	require.NoError(t, os.MkdirAll(portsDir, 0o755))

	cfg := config.Default()
	cfg.PortsDir = portsDir
	cfg.MakeBin = testutil.WriteExecutable(t, dir, "make", zipTreeScript)
	cfg.PortDBDir = filepath.Join(dir, "db")
	service := app.NewService(cfg)

	result, err := service.Search(t.Context(), app.SearchRequest{
		Filter:       types.SearchFilter{Key: types.SearchKeyName, Value: "zip"},
		Fields:       []types.Field{types.FieldName, types.FieldMoved, types.FieldReason},
		IncludeMoved: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.Equal(t, "zip-3.0_1", result.Records[0].Get(types.FieldName))
	assert.False(t, result.Records[0].Has(types.FieldMoved))

	assert.Equal(t, "zip-devel-3.1", result.Records[1].Get(types.FieldName))
	assert.Equal(t, "archivers/zip", result.Records[1].Get(types.FieldMoved))
	assert.Equal(t, "Merged into archivers/zip", result.Records[1].Get(types.FieldReason))
	assert.False(t, result.Records[1].Has(types.FieldDate))
}
