// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package version holds build-time information stamped in via
// -ldflags at release build time; the zero-value defaults apply to
// unreleased/development builds.
package version

import "runtime"

// Version, Vcs and Timestamp are overridden by the release build's
// -ldflags -X settings; left as "dev"/"unknown" for `go build` / `go
// run` during development.
var (
	Version   = "dev"
	Vcs       = "unknown"
	Timestamp = "unknown"
)

// GoVersion is the Go toolchain used to build this binary.
var GoVersion = runtime.Version()

// Platform is the target OS/architecture pair.
var Platform = runtime.GOOS + "/" + runtime.GOARCH
