// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

package apppath

import (
	"path/filepath"
	"strings"
)

// Join appends path elements and returns the result as a new [AppPath].
// The elements are joined with [filepath.Join], so the result is cleaned
// and an absolute element is appended like any other instead of replacing
// the base.
func (p AppPath) Join(elem ...string) AppPath {
	parts := append([]string{string(p)}, elem...)

	return AppPath(filepath.Join(parts...))
}

// Parent returns the immediate parent directory. The second return value
// is false if there is none, which is the case for the filesystem root and
// for the zero value.
func (p AppPath) Parent() (AppPath, bool) {
	if p == "" {
		return "", false
	}

	dir := filepath.Dir(string(p))
	if dir == string(p) {
		return "", false
	}

	return AppPath(dir), true
}

// WithExtension replaces the extension of the final path element with ext,
// or adds it if there is none. An empty ext strips the extension. The stem
// is left untouched either way. A leading dot marks a hidden file, not an
// extension, so ".gitignore" is a stem without extension. A path without a
// final element, like the filesystem root, is returned unchanged.
func (p AppPath) WithExtension(ext string) AppPath {
	name := p.Base()
	if name == "." || name == string(filepath.Separator) {
		return p
	}

	stem := string(p)
	if idx := strings.LastIndexByte(name, '.'); idx > 0 {
		stem = strings.TrimSuffix(stem, name[idx:])
	}

	if ext == "" {
		return AppPath(stem)
	}

	return AppPath(stem + "." + ext)
}

// Ext returns the extension of the final path element as returned by
// [filepath.Ext], including the leading dot.
func (p AppPath) Ext() string {
	return filepath.Ext(string(p))
}

// Base returns the final path element as returned by [filepath.Base].
func (p AppPath) Base() string {
	return filepath.Base(string(p))
}
