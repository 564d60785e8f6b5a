package skipset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildMissingFile(t *testing.T) {
	s, err := Build(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Contains("/anything") {
		t.Error("empty set should not contain anything")
	}
}

func TestBuildEmptyPath(t *testing.T) {
	s, err := Build("")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Contains("/anything") {
		t.Error("empty set should not contain anything")
	}
}

func TestBuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prior.chunksums")
	content := "digest1  /a/one  fck4sha2!aa:1\ndigest2  /a/two  fck4sha2!bb:2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Build(path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !s.Contains("/a/one") || !s.Contains("/a/two") {
		t.Error("expected both prior paths to be present")
	}
	if s.Contains("/a/three") {
		t.Error("unexpected path present in skip set")
	}
}

func TestAdd(t *testing.T) {
	s, _ := Build("")
	s.Add("/fresh")
	if !s.Contains("/fresh") {
		t.Error("Add should make Contains true")
	}
}
