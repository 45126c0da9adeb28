package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portquery/internal/adapters"
)

func TestOptionsRequiresNameOrOrigin(t *testing.T) {
	service := newTestService(t, &fakePortsTree{}, &fakeInstalled{})
	_, err := service.Options(t.Context(), OptionsRequest{})
	require.Error(t, err)
}

func TestOptionsNothingRecorded(t *testing.T) {
	service := newTestService(t, &fakePortsTree{}, &fakeInstalled{})
	result, err := service.Options(t.Context(), OptionsRequest{Name: "zip", Origin: "archivers/zip"})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Empty(t, result.Options)
}

func TestOptionsMergesRecordedFiles(t *testing.T) {
	dbDir := t.TempDir()
	legacy := filepath.Join(dbDir, "zip", "options")
	current := filepath.Join(dbDir, "archivers_zip", "options")
	require.NoError(t, os.MkdirAll(filepath.Dir(legacy), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(current), 0o755))
	require.NoError(t, os.WriteFile(legacy, []byte("WITH_DOCS=true\n"), 0o644))
	require.NoError(t, os.WriteFile(current, []byte("OPTIONS_FILE_UNSET+=DOCS\nOPTIONS_FILE_SET+=ICONV\n"), 0o644))

	service := newTestService(t, &fakePortsTree{}, &fakeInstalled{})
	service.OptionsSource = adapters.NewOptionsFileAdapter(dbDir)

	result, err := service.Options(t.Context(), OptionsRequest{Name: "zip", Origin: "archivers/zip"})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{legacy, current}, result.Files); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}
	want := map[string]bool{"DOCS": false, "ICONV": true}
	if diff := cmp.Diff(want, result.Options); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}
