// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fingerprint derives bubble babble digests of SSH public keys.
//
// The encoding's best-known use is OpenSSH's ssh-keygen -B, which
// renders the digest of a key as the babble encoding of the SHA-1 of
// the key's wire form. These digests are for eyeball comparison by
// people reading keys to each other; they complement, not replace, the
// SHA-256 fingerprints of modern OpenSSH.
package fingerprint // import "babble.io/fingerprint"

import (
	"crypto/sha1"
	"io/ioutil"

	"golang.org/x/crypto/ssh"

	"babble.io/babble"
	"babble.io/errors"
)

// Of returns the bubble babble digest of key, as printed by
// ssh-keygen -B. The odd name works well in the caller:
// fingerprint.Of.
func Of(key ssh.PublicKey) string {
	sum := sha1.Sum(key.Marshal())
	return babble.Encode(sum[:])
}

// ParseAuthorizedKey parses a public key line in authorized_keys
// format and returns its digest and trailing comment.
func ParseAuthorizedKey(in []byte) (digest, comment string, err error) {
	const op errors.Op = "fingerprint.ParseAuthorizedKey"
	key, comment, _, _, err := ssh.ParseAuthorizedKey(in)
	if err != nil {
		return "", "", errors.E(op, errors.Invalid, err)
	}
	return Of(key), comment, nil
}

// File reads a public key file in authorized_keys format and returns
// the digest and comment of the first key it holds.
func File(name string) (digest, comment string, err error) {
	const op errors.Op = "fingerprint.File"
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return "", "", errors.E(op, errors.IO, err)
	}
	digest, comment, err = ParseAuthorizedKey(data)
	if err != nil {
		return "", "", errors.E(op, err)
	}
	return digest, comment, nil
}
