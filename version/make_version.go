// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

// This program generates gen.go, an init function that stamps the
// version package with the build time and the git hash of the
// current tree. It is run by the release process, never by hand.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os/exec"
	"strings"
	"time"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("make_version: ")

	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		log.Fatalf("reading git hash: %v", err)
	}
	sha := strings.TrimSpace(string(out))

	src := fmt.Sprintf(format, time.Now().Unix(), sha)
	if err := ioutil.WriteFile("gen.go", []byte(src), 0644); err != nil {
		log.Fatal(err)
	}
}

const format = `// Code generated by make_version.go. DO NOT EDIT.

package version

import "time"

func init() {
	BuildTime = time.Unix(%d, 0)
	GitSHA = %q
}
`
