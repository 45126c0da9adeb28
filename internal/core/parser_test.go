package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"portquery/internal/types"
)

const sampleSearchOutput = `Port:	zip-3.0_1
Path:	/usr/ports/archivers/zip
Info:	Create/update ZIP files compatible with PKZIP
B-deps:
R-deps:
WWW:	https://infozip.sourceforge.net/Zip.html

Port:	unzip-6.0_22
Path:	/usr/ports/archivers/unzip
Info:	List, test, and extract compressed files from a ZIP archive
`

func TestParseSearchOutput(t *testing.T) {
	records := ParseSearchOutput(t.Context(), sampleSearchOutput, ParseOptions{})
	require.Len(t, records, 2)

	want := map[types.Field]string{
		types.FieldName:  "zip-3.0_1",
		types.FieldPath:  "/usr/ports/archivers/zip",
		types.FieldInfo:  "Create/update ZIP files compatible with PKZIP",
		types.FieldBdeps: "",
		types.FieldRdeps: "",
		types.FieldWWW:   "https://infozip.sourceforge.net/Zip.html",
	}
	if diff := cmp.Diff(want, records[0].Fields); diff != "" {
		t.Fatalf("unexpected first record (-want +got):\n%s", diff)
	}
	require.Equal(t, "unzip-6.0_22", records[1].Get(types.FieldName))
}

func TestParseSearchOutputNormalizesLabels(t *testing.T) {
	raw := "Port:\tfoo-1.0\nB-deps: bar-2.0\nE-deps: baz-3.0\n"
	records := ParseSearchOutput(t.Context(), raw, ParseOptions{})
	require.Len(t, records, 1)
	require.Equal(t, "bar-2.0", records[0].Get(types.FieldBdeps))
	require.Equal(t, "baz-3.0", records[0].Get(types.FieldEdeps))
}

func TestParseSearchOutputLastValueWins(t *testing.T) {
	raw := "Port: foo-1.0\nInfo: first\nInfo: second\n"
	records := ParseSearchOutput(t.Context(), raw, ParseOptions{})
	require.Len(t, records, 1)
	require.Equal(t, "second", records[0].Get(types.FieldInfo))
}

func TestParseSearchOutputDropsMalformedLines(t *testing.T) {
	raw := "Port: foo-1.0\nthis line has no label\n  Indented: nope\nInfo: fine\n"
	records := ParseSearchOutput(t.Context(), raw, ParseOptions{})
	require.Len(t, records, 1)
	want := map[types.Field]string{
		types.FieldName: "foo-1.0",
		types.FieldInfo: "fine",
	}
	if diff := cmp.Diff(want, records[0].Fields); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestParseSearchOutputSkipsMovedEntries(t *testing.T) {
	raw := "Port: foo-1.0\nPath: /usr/ports/devel/foo\n\n" +
		"Port: devel/bar\nMoved: devel/bar2\nDate: 2024-05-01\nReason: renamed\n"

	records := ParseSearchOutput(t.Context(), raw, ParseOptions{})
	require.Len(t, records, 1)
	require.Equal(t, "foo-1.0", records[0].Get(types.FieldName))

	withMoved := ParseSearchOutput(t.Context(), raw, ParseOptions{IncludeMoved: true})
	require.Len(t, withMoved, 2)
	require.Equal(t, "devel/bar2", withMoved[1].Get(types.FieldMoved))
	require.Equal(t, "renamed", withMoved[1].Get(types.FieldReason))
}

func TestParseSearchOutputEmpty(t *testing.T) {
	require.Empty(t, ParseSearchOutput(t.Context(), "", ParseOptions{}))
	require.Empty(t, ParseSearchOutput(t.Context(), "\n\n\n", ParseOptions{}))
}
