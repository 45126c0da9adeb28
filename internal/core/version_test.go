package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePkgName(t *testing.T) {
	tests := []struct {
		pkgname string
		name    string
		version string
	}{
		{pkgname: "zip-3.0_1", name: "zip", version: "3.0_1"},
		{pkgname: "p5-Some-Module-1.2", name: "p5-Some-Module", version: "1.2"},
		{pkgname: "firefox-128.0,2", name: "firefox", version: "128.0,2"},
		{pkgname: "zip", name: "zip", version: ""},
		{pkgname: "  zip-3.0  ", name: "zip", version: "3.0"},
		{pkgname: "", name: "", version: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.pkgname, func(t *testing.T) {
			name, version := ParsePkgName(tt.pkgname)
			require.Equal(t, tt.name, name)
			require.Equal(t, tt.version, version)
		})
	}
}

func TestToDebSyntax(t *testing.T) {
	assert.Equal(t, "3.0", toDebSyntax("3.0"))
	assert.Equal(t, "3.0-1", toDebSyntax("3.0_1"))
	assert.Equal(t, "2:1.2.3-4", toDebSyntax("1.2.3_4,2"))
	assert.Equal(t, "1:128.0", toDebSyntax("128.0,1"))
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "plain older", a: "1.0", b: "1.1", want: -1},
		{name: "revision beats base", a: "3.0", b: "3.0_1", want: -1},
		{name: "revisions order numerically", a: "3.0_2", b: "3.0_10", want: -1},
		{name: "epoch dominates", a: "9.9", b: "1.0,1", want: -1},
		{name: "equal", a: "3.0_1", b: "3.0_1", want: 0},
		{name: "newer", a: "2.0", b: "1.9", want: 1},
		{name: "unparseable compares equal", a: "not a version", b: "1.0", want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareVersions(tt.a, tt.b))
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	assert.Equal(t, "<", UpdateStatus("3.0", "3.0_1"))
	assert.Equal(t, "=", UpdateStatus("3.0_1", "3.0_1"))
	assert.Equal(t, ">", UpdateStatus("3.1", "3.0_1"))
	assert.Equal(t, "?", UpdateStatus("", "3.0"))
	assert.Equal(t, "?", UpdateStatus("3.0", ""))
	assert.Equal(t, "?", UpdateStatus("not a version", "3.0"))
}
