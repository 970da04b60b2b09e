// SPDX-FileCopyrightText: 2026 The apppath authors
//
// SPDX-License-Identifier: MIT

// Package apppath creates absolute paths anchored at the directory that
// contains the running executable.
//
// It is meant for portable applications where the executable and its
// configuration, data and log files stay together as one deployable unit.
// The same binary run from /opt/app, a USB stick or a CI build directory
// addresses its neighbouring files by the same relative strings:
//
//	config := apppath.MustResolve("config.toml")
//	logs := apppath.MustResolve("logs/app.log")
//
//	if err := logs.CreateParents(); err != nil {
//		...
//	}
//
// The executable directory is determined once with [os.Executable] on first
// use and cached for the lifetime of the process. All constructors share the
// cache, so after any successful call no later call can fail with an anchor
// error.
//
// Resolution follows a fixed policy: an empty input resolves to the
// executable directory itself, an absolute input is used as-is, and any
// other input is joined onto the executable directory with [filepath.Join].
// No symlink resolution is performed.
//
// [AppPath] is a string type. Convert with string(p) wherever a native path
// string is required. It also implements [encoding.TextUnmarshaler] and
// [flag.Value], with both resolving their input through the anchored
// constructor, so AppPath fields can be used directly in decoded
// configuration structs and command line flags.
//
// Constructors come in pairs: Resolve returns an error, MustResolve panics.
// The panicking form is the recommended default for applications, since a
// portable application that cannot locate its own executable usually cannot
// continue. Libraries should prefer the fallible form.
package apppath
