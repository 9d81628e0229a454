// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version

import (
	"strings"
	"testing"
	"time"
)

func TestVersion(t *testing.T) {
	defer func(bt time.Time, sha string) {
		BuildTime, GitSHA = bt, sha
	}(BuildTime, GitSHA)

	BuildTime, GitSHA = time.Time{}, ""
	if got := Version(); !strings.Contains(got, "devel") {
		t.Errorf("unstamped Version() = %q, want devel", got)
	}

	BuildTime = time.Date(2020, time.March, 14, 15, 9, 26, 0, time.UTC)
	GitSHA = "f00dfeed"
	got := Version()
	if !strings.Contains(got, Base) {
		t.Errorf("Version() = %q, missing base version %q", got, Base)
	}
	if !strings.Contains(got, "Mar 14 15:09:26 2020 UTC") {
		t.Errorf("Version() = %q, missing build time", got)
	}
	if !strings.Contains(got, "f00dfeed") {
		t.Errorf("Version() = %q, missing git hash", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Version() = %q, want newline-terminated", got)
	}
}
