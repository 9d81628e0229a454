// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package babble

import (
	"babble.io/errors"
)

// Decode returns the bytes encoded by the bubble babble string s.
//
// Decoding is all or nothing: s is scanned once, left to right, and
// the first anomaly is reported with no partial result. The error has
// type *errors.Error; its Kind separates a missing header or trailer,
// a byte outside the encoding alphabet, an in-alphabet byte of the
// wrong class, a checksum mismatch, and structural corruption, and
// its Offset names the offending byte where one can be named. The
// header is at offset zero.
func Decode(s string) ([]byte, error) {
	const op errors.Op = "babble.Decode"

	if s == empty {
		return []byte{}, nil
	}

	// Shape first: an encoding is delimited by the marker at both ends.
	hasHeader := len(s) >= 1 && s[0] == marker
	hasTrailer := len(s) >= 2 && s[len(s)-1] == marker
	switch {
	case hasHeader && hasTrailer:
	case hasHeader:
		return nil, errors.E(op, errors.MalformedTrailer)
	case hasTrailer:
		return nil, errors.E(op, errors.MalformedHeader)
	default:
		return nil, errors.E(op, errors.Corrupted)
	}

	// Every interior byte must come from the encoding alphabet. The
	// prescan reports the first stray byte with its position before
	// any structural diagnosis is attempted.
	for i := 1; i < len(s)-1; i++ {
		if !inAlphabet(s[i]) {
			return nil, errors.E(op, errors.InvalidByte, errors.Offset(i))
		}
	}

	buf := make([]byte, 0, DecodedLen(len(s)))
	cs := 1
	i := 1 // first byte after the header

	// Full words: vowel consonant vowel consonant '-' consonant,
	// two bytes each, leaving the final three-character unit.
	for ; len(s)-1-i >= 6; i += 6 {
		if s[i+4] != separator {
			return nil, errors.E(op, errors.Corrupted, errors.Offset(i+4))
		}
		a, err := vowel(op, s, i)
		if err != nil {
			return nil, err
		}
		m, err := consonant(op, s, i+1)
		if err != nil {
			return nil, err
		}
		c, err := vowel(op, s, i+2)
		if err != nil {
			return nil, err
		}
		left, err := decodeTriple(op, i, a, m, c, cs)
		if err != nil {
			return nil, err
		}
		hi, err := consonant(op, s, i+3)
		if err != nil {
			return nil, err
		}
		lo, err := consonant(op, s, i+5)
		if err != nil {
			return nil, err
		}
		right := byte(hi<<4 | lo)
		buf = append(buf, left, right)
		cs = (cs*5 + int(left)*7 + int(right)) % 36
	}

	if len(s)-1-i != 3 {
		return nil, errors.E(op, errors.Corrupted)
	}

	// The final unit is a parity tuple around the marker (even byte
	// count) or one last data triple (odd byte count). Both start and
	// end with a vowel.
	a, err := vowel(op, s, i)
	if err != nil {
		return nil, err
	}
	c, err := vowel(op, s, i+2)
	if err != nil {
		return nil, err
	}
	if s[i+1] == marker {
		if a != cs%6 || c != cs/6 {
			return nil, errors.E(op, errors.ChecksumMismatch)
		}
		return buf, nil
	}
	m, err := consonant(op, s, i+1)
	if err != nil {
		return nil, err
	}
	last, err := decodeTriple(op, i, a, m, c, cs)
	if err != nil {
		return nil, err
	}
	return append(buf, last), nil
}

// vowel returns the value of the vowel at s[i].
func vowel(op errors.Op, s string, i int) (int, error) {
	v := vowelValue[s[i]]
	if v < 0 {
		return 0, errors.E(op, errors.ExpectedVowel, errors.Offset(i))
	}
	return int(v), nil
}

// consonant returns the value of the data consonant at s[i].
// The marker 'x' is not a data consonant.
func consonant(op errors.Op, s string, i int) (int, error) {
	c := consonantValue[s[i]]
	if c < 0 {
		return 0, errors.E(op, errors.ExpectedConsonant, errors.Offset(i))
	}
	return int(c), nil
}

// decodeTriple reverses the three-letter unit beginning at offset i:
// a, m, c are the alphabet values of its characters and cs is the
// running checksum the encoder folded into the vowels. A vowel that
// cannot have come from a two-bit field under cs is corruption.
func decodeTriple(op errors.Op, i, a, m, c, cs int) (byte, error) {
	high := (a + 6 - cs%6) % 6
	if high >= 4 {
		return 0, errors.E(op, errors.Corrupted, errors.Offset(i))
	}
	low := (c + 6 - cs/6%6) % 6
	if low >= 4 {
		return 0, errors.E(op, errors.Corrupted, errors.Offset(i+2))
	}
	return byte(high<<6 | m<<2 | low), nil
}
