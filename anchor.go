// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

package apppath

import (
	"os"
	"path/filepath"
	"sync/atomic"
)

// Process wide anchor cache. Written at most once, read-only afterwards.
var exeDir atomic.Pointer[string]

// ExeDir returns the absolute path of the directory containing the running
// executable.
//
// The directory is determined with [os.Executable] on first call and cached
// for the lifetime of the process. After the first successful call ExeDir
// never returns an error. A failed attempt caches nothing, so later calls
// may retry.
//
// It returns an [ExecutableNotFoundError] if the executable location cannot
// be determined and [ErrEmptyExecutablePath] if the host reports an empty
// path.
func ExeDir() (string, error) {
	if dir := exeDir.Load(); dir != nil {
		return *dir, nil
	}

	dir, err := exeDirInit(os.Executable)
	if err != nil {
		return "", err
	}

	// Concurrent first callers may race up to here. The first published
	// value wins and is observed by all of them.
	exeDir.CompareAndSwap(nil, &dir)

	return *exeDir.Load(), nil
}

// MustExeDir calls [ExeDir] and panics in case of errors.
func MustExeDir() string {
	dir, err := ExeDir()
	if err != nil {
		panic(err)
	}

	return dir
}

func exeDirInit(executable func() (string, error)) (string, error) {
	exe, err := executable()
	if err != nil {
		return "", &ExecutableNotFoundError{Err: err}
	}

	if exe == "" {
		return "", ErrEmptyExecutablePath
	}

	// For an executable directly at the filesystem root, like /init in a
	// minimal container, filepath.Dir yields the root itself. Valid anchor,
	// not an error.
	return filepath.Dir(exe), nil
}
