package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/linx-lang/linx/image"
	"github.com/linx-lang/linx/manifest"
	"github.com/linx-lang/linx/vm"
)

func TestRunProgram(t *testing.T) {
	var out bytes.Buffer
	rt := vm.New(&vm.Config{Stdout: &out})

	results := runProgram(rt)

	if results.String() != "[13, 14, 35, 15]" {
		t.Errorf("results = %s, want [13, 14, 35, 15]", results)
	}
	if out.String() != "13\n14\n35\n15\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSaveImage(t *testing.T) {
	rt := vm.New(&vm.Config{Stdout: &bytes.Buffer{}})
	runProgram(rt)

	path := filepath.Join(t.TempDir(), "counter.db")
	if err := saveImage(rt, path); err != nil {
		t.Fatalf("saveImage failed: %v", err)
	}

	img, err := image.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	names, err := img.Names()
	if err != nil {
		t.Fatal(err)
	}
	// c1, c2 and makeCounter hold functions and are skipped.
	if len(names) != 1 || names[0] != "results" {
		t.Errorf("Names = %v, want [results]", names)
	}
}

func TestLogVerbosity(t *testing.T) {
	t.Setenv("LINX_DEBUG", "")
	debug := &manifest.Manifest{Runtime: manifest.RuntimeConfig{Debug: true}}

	tests := []struct {
		name    string
		verbose bool
		m       *manifest.Manifest
		want    int
	}{
		{"quiet", false, nil, 0},
		{"flag", true, nil, 2},
		{"manifest", false, debug, 2},
		{"manifest without debug", false, &manifest.Manifest{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logVerbosity(tt.verbose, tt.m); got != tt.want {
				t.Errorf("logVerbosity = %d, want %d", got, tt.want)
			}
		})
	}

	t.Setenv("LINX_DEBUG", "1")
	if got := logVerbosity(false, nil); got != 2 {
		t.Errorf("logVerbosity with LINX_DEBUG = %d, want 2", got)
	}
}
