// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

package apppath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/exedir/apppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParents(t *testing.T) {
	base := t.TempDir()

	logFile := apppath.MustResolve(filepath.Join(base, "logs", "2024", "app.log"))

	require.NoError(t, logFile.CreateParents())

	assert.DirExists(t, filepath.Join(base, "logs"))
	assert.DirExists(t, filepath.Join(base, "logs", "2024"))
	assert.NoFileExists(t, string(logFile))

	// Idempotent.
	require.NoError(t, logFile.CreateParents())
}

func TestCreateParentsWithoutParent(t *testing.T) {
	// Walk up to the filesystem root, which has no parent. Nothing to do,
	// nothing to fail.
	path := apppath.AppPath(t.TempDir())

	for {
		parent, ok := path.Parent()
		if !ok {
			break
		}

		path = parent
	}

	assert.NoError(t, path.CreateParents())
}

func TestCreateDir(t *testing.T) {
	base := t.TempDir()

	cacheDir := apppath.MustResolve(filepath.Join(base, "cache"))

	require.NoError(t, cacheDir.CreateDir())
	assert.DirExists(t, string(cacheDir))

	// Idempotent.
	require.NoError(t, cacheDir.CreateDir())
	assert.DirExists(t, string(cacheDir))
}

func TestCreateDirNested(t *testing.T) {
	base := t.TempDir()

	deepDir := apppath.MustResolve(filepath.Join(base, "data", "backups", "daily"))

	require.NoError(t, deepDir.CreateDir())

	assert.DirExists(t, filepath.Join(base, "data"))
	assert.DirExists(t, filepath.Join(base, "data", "backups"))
	assert.DirExists(t, string(deepDir))
}

func TestCreateDirCollidesWithFile(t *testing.T) {
	base := t.TempDir()

	filePath := filepath.Join(base, "occupied")
	require.NoError(t, os.WriteFile(filePath, []byte("not a directory"), 0o644))

	err := apppath.AppPath(filePath).CreateDir()
	require.Error(t, err)

	var pathErr *apppath.PathError

	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "create dir", pathErr.Op)
	assert.Equal(t, filePath, pathErr.Path)
	assert.Error(t, pathErr.Err, "host cause must be exposed")

	assert.ErrorIs(t, err, &apppath.PathError{})
}
