// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package babble

import (
	"bytes"
	"math/rand"
	"testing"
)

// vectors pairs raw input with its canonical encoding. The short
// entries are worked out by hand from the tables; the longer ones are
// community test vectors for the encoding.
var vectors = []struct {
	data    string
	encoded string
}{
	{"", "xexax"},
	{"\x00", "xebax"},
	{"\x01", "xebex"},
	{"1", "xesex"},
	{"a", "ximex"},
	{"\x00\x00", "xebab-byxax"},
	{"\x00\x00\x00", "xebab-bybax"},
	{"1234567890", "xesef-disof-gytuf-katof-movif-baxux"},
	{"Pineapple", "xigak-nyryk-humil-bosek-sonax"},
	{"💎🦀❤️✨💪", "xusan-zugom-vesin-zenom-bumun-tanav-zyvam-zomon-sapaz-bulin-dypux"},
}

func TestEncode(t *testing.T) {
	for _, v := range vectors {
		if got := Encode([]byte(v.data)); got != v.encoded {
			t.Errorf("Encode(%q) = %q, want %q", v.data, got, v.encoded)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, v := range vectors {
		got, err := Decode(v.encoded)
		if err != nil {
			t.Errorf("Decode(%q): %v", v.encoded, err)
			continue
		}
		if !bytes.Equal(got, []byte(v.data)) {
			t.Errorf("Decode(%q) = %q, want %q", v.encoded, got, v.data)
		}
	}
}

func TestEmpty(t *testing.T) {
	if got := Encode(nil); got != "xexax" {
		t.Errorf(`Encode(nil) = %q, want "xexax"`, got)
	}
	got, err := Decode("xexax")
	if err != nil {
		t.Fatalf(`Decode("xexax"): %v`, err)
	}
	if len(got) != 0 {
		t.Errorf(`Decode("xexax") = %v, want empty`, got)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for size := 0; size <= 257; size++ {
		data := make([]byte, size)
		for trial := 0; trial < 8; trial++ {
			rnd.Read(data)
			enc := Encode(data)
			if len(enc) != EncodedLen(size) {
				t.Fatalf("len(Encode(<%d bytes>)) = %d, want %d", size, len(enc), EncodedLen(size))
			}
			if max := DecodedLen(len(enc)); max < size {
				t.Fatalf("DecodedLen(%d) = %d, but the encoding holds %d bytes", len(enc), max, size)
			}
			got, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode(Encode(%q)): %v", data, err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("round trip of %d bytes: got %q, want %q", size, got, data)
			}
		}
	}
}

func TestEncodedShape(t *testing.T) {
	// Marker at both ends, a dash after every five-letter word.
	data := []byte("shape of things to come")
	enc := Encode(data)
	if enc[0] != marker || enc[len(enc)-1] != marker {
		t.Fatalf("Encode(%q) = %q: not marker delimited", data, enc)
	}
	for i := 5; i < len(enc)-4; i += 6 {
		if enc[i] != separator {
			t.Errorf("Encode(%q) = %q: byte %d is %q, want %q", data, enc, i, enc[i], separator)
		}
	}
}

func TestEncodedLen(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 5},
		{1, 5},
		{2, 11},
		{3, 11},
		{4, 17},
		{9, 29},
		{10, 35},
	}
	for _, c := range cases {
		if got := EncodedLen(c.n); got != c.want {
			t.Errorf("EncodedLen(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestDecodedLen(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{11, 3},
		{17, 5},
		{29, 9},
		{35, 11},
	}
	for _, c := range cases {
		if got := DecodedLen(c.n); got != c.want {
			t.Errorf("DecodedLen(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

var (
	benchEncoded string
	benchDecoded []byte
)

func BenchmarkEncode(b *testing.B) {
	data := []byte("1234567890")
	for i := 0; i < b.N; i++ {
		benchEncoded = Encode(data)
	}
}

func BenchmarkEncodeLong(b *testing.B) {
	data := []byte("💎🦀❤️✨💪")
	for i := 0; i < b.N; i++ {
		benchEncoded = Encode(data)
	}
}

func BenchmarkDecode(b *testing.B) {
	const enc = "xesef-disof-gytuf-katof-movif-baxux"
	for i := 0; i < b.N; i++ {
		var err error
		benchDecoded, err = Decode(enc)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeLong(b *testing.B) {
	const enc = "xusan-zugom-vesin-zenom-bumun-tanav-zyvam-zomon-sapaz-bulin-dypux"
	for i := 0; i < b.N; i++ {
		var err error
		benchDecoded, err = Decode(enc)
		if err != nil {
			b.Fatal(err)
		}
	}
}
