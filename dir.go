// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

package apppath

import (
	"os"
)

const defaultDirMode = 0o755

// CreateParents creates all missing ancestor directories of the path. It
// does not create the path itself. Use it before writing a file at the
// path. It is idempotent and succeeds trivially if the path has no parent.
//
// It returns a [PathError] in case of errors. Creation is not atomic across
// the directory chain; partial progress may remain on failure.
func (p AppPath) CreateParents() error {
	parent, ok := p.Parent()
	if !ok {
		return nil
	}

	err := os.MkdirAll(string(parent), defaultDirMode)
	if err != nil {
		return &PathError{
			Op:   "create parents",
			Path: string(p),
			Err:  err,
		}
	}

	return nil
}

// CreateDir creates the path as a directory, including all missing
// ancestors. It is idempotent if the path already is a directory and fails
// if a non-directory exists at the path.
//
// It returns a [PathError] in case of errors. Creation is not atomic across
// the directory chain; partial progress may remain on failure.
func (p AppPath) CreateDir() error {
	err := os.MkdirAll(string(p), defaultDirMode)
	if err != nil {
		return &PathError{
			Op:   "create dir",
			Path: string(p),
			Err:  err,
		}
	}

	return nil
}
