// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package babble implements the Bubble Babble binary data encoding.
//
// The encoding turns every two bytes of input into a five-letter
// pronounceable word of alternating consonants and vowels, joins the
// words with dashes, and folds a running checksum into the vowels so
// that transcription slips surface when the string is decoded. Every
// encoding begins and ends with the marker consonant 'x'; the empty
// input encodes to "xexax".
//
// The scheme is described in Antti Huima's draft
// http://web.mit.edu/kenta/www/one/bubblebabble/spec/jrtrjwzi/draft-huima-01.txt
// and is best known for rendering SSH key digests (ssh-keygen -B).
package babble // import "babble.io/babble"

// The two alphabets. A byte's outer two-bit fields are offset by the
// running checksum and land in the vowels; its middle four bits index
// the consonants. The marker 'x' is deliberately absent from the
// consonant table: it delimits the encoding and centers the parity
// tuple, and never carries data.
const (
	vowels     = "aeiouy"
	consonants = "bcdfghklmnprstvz"

	marker    = 'x'
	separator = '-'
)

// empty is the canonical encoding of zero bytes of input.
const empty = "xexax"

// Alphabet values for every byte: vowels hold 0-5, consonants 0-15,
// everything else -1. Filled in at init and never written again.
var (
	vowelValue     [256]int8
	consonantValue [256]int8
)

func init() {
	for i := range vowelValue {
		vowelValue[i] = -1
		consonantValue[i] = -1
	}
	for i := 0; i < len(vowels); i++ {
		vowelValue[vowels[i]] = int8(i)
	}
	for i := 0; i < len(consonants); i++ {
		consonantValue[consonants[i]] = int8(i)
	}
}

// inAlphabet reports whether b can appear in an encoded string.
func inAlphabet(b byte) bool {
	return vowelValue[b] >= 0 || consonantValue[b] >= 0 || b == marker || b == separator
}

// EncodedLen returns the length in bytes of the encoding of an input
// n bytes long. It is exact for every n.
func EncodedLen(n int) int {
	return 6*(n/2) + 5
}

// DecodedLen returns the maximum length in bytes of the decoding of
// an encoded string n bytes long. An encoding of that length decodes
// to at most that many bytes, with equality when the input's byte
// count was odd. No encoding is shorter than 5 bytes.
func DecodedLen(n int) int {
	if n < 5 {
		return 0
	}
	return 2*((n-2)/6) + 1
}

// Encode returns the bubble babble encoding of data.
func Encode(data []byte) string {
	if len(data) == 0 {
		return empty
	}
	buf := make([]byte, 0, EncodedLen(len(data)))
	buf = append(buf, marker)
	cs := 1 // running checksum in [0, 35]
	i := 0
	for ; i+1 < len(data); i += 2 {
		left, right := data[i], data[i+1]
		buf = appendTriple(buf, left, cs)
		buf = append(buf, consonants[right>>4&0xF], separator, consonants[right&0xF])
		cs = (cs*5 + int(left)*7 + int(right)) % 36
	}
	if i < len(data) {
		// Odd byte count: the last byte forms a final triple under
		// the checksum accumulated so far.
		buf = appendTriple(buf, data[i], cs)
	} else {
		// Even byte count: the final word re-encodes the checksum
		// around the marker so the decoder can verify it.
		buf = append(buf, vowels[cs%6], marker, vowels[cs/6])
	}
	buf = append(buf, marker)
	return string(buf)
}

// appendTriple appends the three-letter unit for b under the running
// checksum: top two bits and checksum pick the first vowel, the middle
// four bits pick the consonant, bottom two bits and checksum pick the
// second vowel.
func appendTriple(buf []byte, b byte, cs int) []byte {
	return append(buf,
		vowels[(int(b>>6&0x3)+cs)%6],
		consonants[b>>2&0xF],
		vowels[(int(b&0x3)+cs/6)%6])
}
