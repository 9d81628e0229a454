// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package babble

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	yaml "gopkg.in/yaml.v2"
)

// The YAML corpus duplicates a few of the table vectors in a form
// other implementations can consume directly.

type vectorFile struct {
	Vectors []struct {
		Data    string `yaml:"data"`
		Encoded string `yaml:"encoded"`
	} `yaml:"vectors"`
}

func readVectors(t *testing.T) vectorFile {
	t.Helper()
	raw, err := ioutil.ReadFile(filepath.Join("testdata", "vectors.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var vf vectorFile
	if err := yaml.Unmarshal(raw, &vf); err != nil {
		t.Fatalf("parsing vectors.yaml: %v", err)
	}
	if len(vf.Vectors) == 0 {
		t.Fatal("vectors.yaml holds no vectors")
	}
	return vf
}

func TestCorpusEncode(t *testing.T) {
	for _, v := range readVectors(t).Vectors {
		if got := Encode([]byte(v.Data)); got != v.Encoded {
			t.Errorf("Encode(%q) = %q, want %q", v.Data, got, v.Encoded)
		}
	}
}

func TestCorpusDecode(t *testing.T) {
	for _, v := range readVectors(t).Vectors {
		got, err := Decode(v.Encoded)
		if err != nil {
			t.Errorf("Decode(%q): %v", v.Encoded, err)
			continue
		}
		if !bytes.Equal(got, []byte(v.Data)) {
			t.Errorf("Decode(%q) = %q, want %q", v.Encoded, got, v.Data)
		}
	}
}
