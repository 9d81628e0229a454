// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run make_version.go

// The version package is used by the release process to add an
// informative version string to the babble command.
package version // import "babble.io/version"

import (
	"fmt"
	"time"
)

// Base is the version of the most recent release.
const Base = "0.1.0"

// These are overwritten by an init function created by
// make_version.go during the release process.
var (
	BuildTime = time.Time{}
	GitSHA    = ""
)

// Version returns a newline-terminated string describing the current
// version of the build.
func Version() string {
	if GitSHA == "" {
		return fmt.Sprintf("babble %s (devel)\n", Base)
	}
	str := fmt.Sprintf("babble %s\n", Base)
	str += fmt.Sprintf("Build time: %s\n", BuildTime.In(time.UTC).Format(time.Stamp+" 2006 UTC"))
	str += fmt.Sprintf("Git hash:   %s\n", GitSHA)
	return str
}
