// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

package apppath

import (
	"strings"
)

// AppPath is an absolute path resolved against the executable directory.
//
// It is a string type, so values compare, order and hash like the native
// path strings they hold. Two values built from different inputs that
// resolve to the same path are indistinguishable. Convert with string(p)
// wherever a plain path string is required.
//
// Values are immutable snapshots of one resolution; all operations return
// fresh values. Obtain them from the package constructors. The zero value
// is empty and not anchored anywhere.
type AppPath string

// String implements the [fmt.Stringer] interface.
func (p AppPath) String() string {
	return string(p)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p AppPath) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// The text is resolved against the executable directory, so relative paths
// read from configuration files stay anchored to the application.
func (p *AppPath) UnmarshalText(text []byte) error {
	var err error
	*p, err = Resolve(string(text))

	return err
}

// Set implements the [flag.Value] interface. The value is resolved against
// the executable directory.
func (p *AppPath) Set(value string) error {
	var err error
	*p, err = Resolve(value)

	return err
}

// AppPathList is a list of [AppPath]s. It implements the [flag.Value]
// interface for flags that may be given multiple times.
type AppPathList []AppPath

// String implements the [flag.Value] interface.
func (l AppPathList) String() string {
	paths := make([]string, len(l))
	for idx, path := range l {
		paths[idx] = string(path)
	}

	return strings.Join(paths, ",")
}

// Set implements the [flag.Value] interface.
func (l *AppPathList) Set(value string) error {
	path, err := Resolve(value)
	if err != nil {
		return err
	}

	*l = append(*l, path)

	return nil
}
