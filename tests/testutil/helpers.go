// Package testutil provides shared helpers for the integration test
// packages.
package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// WriteExecutable drops a shell script into dir and marks it
// executable.  Tests put dir on PATH or point the service config at
// the returned path so the script stands in for a system binary.
func WriteExecutable(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// WriteOptionsFile writes a saved options file under dbDir, creating
// the per-port directory on the way.
func WriteOptionsFile(t *testing.T, dbDir, subdir, name, content string) string {
	t.Helper()
	path := filepath.Join(dbDir, subdir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// InstalledPackage is one row seeded into a test package database.
type InstalledPackage struct {
	Name    string
	Version string
	Origin  string
	Comment string
}

// SeedInstalledDB creates a pkg-style local.sqlite under dir holding
// the given packages and returns its path.
func SeedInstalledDB(t *testing.T, dir string, packages []InstalledPackage) string {
	t.Helper()
	path := filepath.Join(dir, "local.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE packages (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		version TEXT NOT NULL,
		origin TEXT NOT NULL,
		comment TEXT,
		prefix TEXT,
		maintainer TEXT,
		www TEXT,
		arch TEXT
	)`)
	require.NoError(t, err)

	for _, pkg := range packages {
		_, err = db.Exec(
			"INSERT INTO packages (name, version, origin, comment) VALUES (?, ?, ?, ?)",
			pkg.Name, pkg.Version, pkg.Origin, pkg.Comment,
		)
		require.NoError(t, err)
	}
	return path
}
