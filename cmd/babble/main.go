// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Babble encodes and decodes data in the bubble babble format.
// See the command's usage method for documentation.
package main // import "babble.io/cmd/babble"

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"babble.io/babble"
	"babble.io/fingerprint"
	"babble.io/log"
	"babble.io/version"
)

const help = `Babble encodes arbitrary data as pronounceable five-letter words.

The subcommands are:

  encode
	Encode the input and print it in the bubble babble format.

  decode
	Decode bubble babble input, verifying its checksum, and write
	the original data to standard output.

  fingerprint
	Read an SSH public key in authorized_keys format and print its
	bubble babble digest, as printed by ssh-keygen -B.

  version
	Print version information about the babble command.

Input is read from standard input unless -in names a file.
`

var (
	inFile    = flag.String("in", "", "input `file` (default standard input)")
	noNewline = flag.Bool("n", false, "do not print the final newline")
	logLevel  = flag.String("log", "info", "`level` of logging: debug, info, error, disabled")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if err := log.SetLevel(*logLevel); err != nil {
		exitf("%v", err)
	}

	if flag.NArg() != 1 {
		usage()
	}

	switch flag.Arg(0) {
	case "encode":
		encode(input())
	case "decode":
		decode(input())
	case "fingerprint":
		digest()
	case "version":
		fmt.Fprint(os.Stdout, version.Version())
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "%s\n", help)
	fmt.Fprintln(os.Stderr, "Usage of babble:")
	fmt.Fprintln(os.Stderr, "\tbabble [flags] <command>")
	fmt.Fprintln(os.Stderr, "Commands: encode, decode, fingerprint, version")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
	os.Exit(2)
}

// input reads the whole input, from the file named by -in if set
// and otherwise from standard input.
func input() []byte {
	if *inFile == "" {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			exitf("reading standard input: %v", err)
		}
		return data
	}
	data, err := ioutil.ReadFile(*inFile)
	if err != nil {
		exitf("%v", err)
	}
	return data
}

func encode(data []byte) {
	log.Debug.Printf("encoding %d bytes", len(data))
	out(babble.Encode(data))
}

func decode(data []byte) {
	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")
	log.Debug.Printf("decoding %d characters", len(s))
	decoded, err := babble.Decode(s)
	if err != nil {
		exitf("%v", err)
	}
	if _, err := os.Stdout.Write(decoded); err != nil {
		exitf("writing standard output: %v", err)
	}
}

func digest() {
	var (
		dg, comment string
		err         error
	)
	if *inFile == "" {
		dg, comment, err = fingerprint.ParseAuthorizedKey(input())
	} else {
		dg, comment, err = fingerprint.File(*inFile)
	}
	if err != nil {
		exitf("%v", err)
	}
	if comment != "" {
		dg += " " + comment
	}
	out(dg)
}

// out writes s to standard output, followed by a newline unless -n is set.
func out(s string) {
	if !*noNewline {
		s += "\n"
	}
	if _, err := fmt.Fprint(os.Stdout, s); err != nil {
		exitf("writing standard output: %v", err)
	}
}

func exitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "babble: "+format+"\n", args...)
	os.Exit(1)
}
