package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, rest := parseOptions(nil)
	if opts.JSONLines || opts.File != "" {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %v, want empty", rest)
	}
}

func TestParseOptionsFlags(t *testing.T) {
	opts, _ := parseOptions([]string{"--json-lines", "--file", "in.txt"})
	if !opts.JSONLines || opts.File != "in.txt" {
		t.Errorf("unexpected opts: %+v", opts)
	}
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("{a: 1}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := readInput(&cliOptions{File: path})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != "{a: 1}" {
		t.Errorf("readInput = %q", data)
	}
}

func TestReadInputFromStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		w.Write([]byte("[1, 2]"))
		w.Close()
	}()

	data, err := readInput(&cliOptions{})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != "[1, 2]" {
		t.Errorf("readInput = %q", data)
	}
}
