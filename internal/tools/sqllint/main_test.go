package main

import (
	"os"
	"path/filepath"
	"testing"
)

func lintSource(t *testing.T, src string) []violation {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "queries.go")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	vs, err := lintFile(path)
	if err != nil {
		t.Fatalf("lintFile: %v", err)
	}
	return vs
}

func TestLintAcceptsMarkedQuery(t *testing.T) {
	src := "package q\n\nconst Q = `--sql 4b6f9a1e-3c52-4d8a-9f0e-2d7c8b5a1f64\nselect 1;\n`\n"
	if vs := lintSource(t, src); len(vs) != 0 {
		t.Fatalf("violations = %v", vs)
	}
}

func TestLintFlagsUnmarkedQuery(t *testing.T) {
	src := "package q\n\nconst Q = `select kind from lookup_events;`\n"
	vs := lintSource(t, src)
	if len(vs) != 1 {
		t.Fatalf("violations = %v", vs)
	}
	if vs[0].name != "Q" {
		t.Fatalf("name = %q", vs[0].name)
	}
}

func TestLintIgnoresProse(t *testing.T) {
	src := "package q\n\nconst P = `Provide detailed information with the following structure`\n"
	if vs := lintSource(t, src); len(vs) != 0 {
		t.Fatalf("violations = %v", vs)
	}
}
