// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

package apppath

import (
	"errors"
	"fmt"
)

// ErrEmptyExecutablePath is returned if the host reports an empty path for
// the running executable. This indicates a broken environment, like a
// non-standard program loader.
var ErrEmptyExecutablePath = errors.New("executable path is empty")

// ExecutableNotFoundError is returned if the path of the running executable
// cannot be determined at all. This may happen in heavily sandboxed
// environments or if the executable was unlinked while running.
type ExecutableNotFoundError struct {
	Err error
}

// Error implements the [error] interface.
func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("determine executable location: %v", e.Err)
}

// Is implements the [errors.Is] interface.
func (*ExecutableNotFoundError) Is(other error) bool {
	_, ok := other.(*ExecutableNotFoundError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExecutableNotFoundError) Unwrap() error {
	return e.Err
}

// PathError wraps any error occurring during a filesystem operation on an
// [AppPath].
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*PathError) Is(other error) bool {
	_, ok := other.(*PathError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *PathError) Unwrap() error {
	return e.Err
}
