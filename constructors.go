// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

package apppath

import (
	"os"
	"path/filepath"
)

// resolve applies the resolution policy. It is a pure function of its
// inputs; dir is always absolute by construction of [ExeDir].
func resolve(dir, path string) string {
	switch {
	case path == "":
		return dir
	case filepath.IsAbs(path):
		return path
	default:
		return filepath.Join(dir, path)
	}
}

// Dir returns the executable directory itself.
func Dir() (AppPath, error) {
	dir, err := ExeDir()
	if err != nil {
		return "", err
	}

	return AppPath(dir), nil
}

// MustDir calls [Dir] and panics in case of errors.
func MustDir() AppPath {
	return AppPath(MustExeDir())
}

// Resolve creates an [AppPath] for the given path.
//
// A relative path is joined onto the executable directory. An absolute path
// is used as-is, bypassing the anchor. An empty path resolves to the
// executable directory itself.
//
// It returns an error only if the executable directory cannot be determined
// on the first call, see [ExeDir].
func Resolve(path string) (AppPath, error) {
	dir, err := ExeDir()
	if err != nil {
		return "", err
	}

	return AppPath(resolve(dir, path)), nil
}

// MustResolve calls [Resolve] and panics in case of errors.
//
// This is the primary constructor for applications. After the executable
// directory has been determined once it never panics.
func MustResolve(path string) AppPath {
	dir := MustExeDir()

	return AppPath(resolve(dir, path))
}

// ResolveOverride creates an [AppPath] for the given path, unless override
// is non-empty, in which case the override is resolved instead.
//
// This is the hook for deployment time redirection through CLI flags or
// configuration values. Note that an absolute override bypasses the
// executable directory entirely.
func ResolveOverride(path, override string) (AppPath, error) {
	if override != "" {
		return Resolve(override)
	}

	return Resolve(path)
}

// MustResolveOverride calls [ResolveOverride] and panics in case of errors.
func MustResolveOverride(path, override string) AppPath {
	if override != "" {
		return MustResolve(override)
	}

	return MustResolve(path)
}

// ResolveOverrideFunc creates an [AppPath] for the given path, unless
// overrideFn returns an override and true, in which case the override is
// resolved instead.
//
// The function is called exactly once. Use this to chain multiple override
// sources without constructing paths that are discarded:
//
//	config, err := apppath.ResolveOverrideFunc("config.toml", func() (string, bool) {
//		if v, ok := os.LookupEnv("APP_CONFIG"); ok {
//			return v, true
//		}
//		return os.LookupEnv("CONFIG_FILE")
//	})
func ResolveOverrideFunc(path string, overrideFn func() (string, bool)) (AppPath, error) {
	if override, ok := overrideFn(); ok {
		return Resolve(override)
	}

	return Resolve(path)
}

// MustResolveOverrideFunc calls [ResolveOverrideFunc] and panics in case of
// errors.
func MustResolveOverrideFunc(path string, overrideFn func() (string, bool)) AppPath {
	if override, ok := overrideFn(); ok {
		return MustResolve(override)
	}

	return MustResolve(path)
}

// ResolveEnv creates an [AppPath] for the given path, unless the
// environment variable key is set to a non-empty value, in which case that
// value is resolved instead.
//
// Like with [ResolveOverride], an absolute value in the variable bypasses
// the executable directory.
func ResolveEnv(path, key string) (AppPath, error) {
	return ResolveOverride(path, os.Getenv(key))
}

// MustResolveEnv calls [ResolveEnv] and panics in case of errors.
func MustResolveEnv(path, key string) AppPath {
	return MustResolveOverride(path, os.Getenv(key))
}
